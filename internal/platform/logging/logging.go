// Package logging builds the structured loggers used by the platform runners
// and reports simulation events through them.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/meowgic/internal/core"
)

// New creates a timestamped logger at the named level ("debug", "info", "warn", "error").
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "meowgic",
		Level:           lvl,
	})
	return logger, nil
}

// OpenFile opens (or creates) meowgic.log in dir for appending.
// The TUI owns the terminal, so interactive runs log here instead of stderr.
func OpenFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, "meowgic.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return f, nil
}

// NewRunID returns an identifier attached to every line logged for one game run.
func NewRunID() string {
	return uuid.NewString()
}

// Events logs simulation events. Session milestones are logged at info,
// everything else at debug.
func Events(logger *log.Logger, events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case "life_lost":
			logger.Info("life lost", "lives", e.Value)
		case "game_over":
			logger.Info("game over", "score", e.Value)
		case "reset":
			logger.Info("run reset")
		default:
			logger.Debug(e.Kind, "value", e.Value)
		}
	}
}
