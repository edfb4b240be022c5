package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/meowgic/internal/config"
	"github.com/vovakirdan/meowgic/internal/core"
	"github.com/vovakirdan/meowgic/internal/platform/logging"
	"github.com/vovakirdan/meowgic/internal/platform/tui"
	"github.com/vovakirdan/meowgic/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  W/Up, S/Down     - Step forward / back
  A/Left, D/Right  - Turn left / right
  Space            - Jump
  M                - Meow (stun nearby dogs)
  E                - Drop a decoy
  C                - Toggle the magnet bubble
  +/-              - Zoom
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - More lives, fewer and slower dogs, dogs speed up with score
  normal - Dogs start at 30% of the extra speed and speed up with score
  hard   - Fewer lives, dogs start at 70% of the extra speed
  fixed  - No progression, tuning exactly as configured

Logs go to ~/.meowgic/meowgic.log while the terminal is in use.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if _, err := loadTuning(); err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create("meowgic")
	if err != nil {
		return err
	}
	return tui.Run(game, cfg, logger)
}

// fileLogger logs to the user directory. When the file cannot be opened the
// run continues without logs.
func fileLogger() (*log.Logger, func(), error) {
	f, err := logging.OpenFile(config.UserDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, lerr := logging.New(io.Discard, flagLogLevel)
		return logger, func() {}, lerr
	}
	logger, err := logging.New(f, flagLogLevel)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
