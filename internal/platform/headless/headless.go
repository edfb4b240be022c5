// Package headless runs a game without a terminal, driven by scripted input.
// It is used by the sim command and by tests that need many frames quickly.
package headless

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meowgic/internal/core"
	"github.com/vovakirdan/meowgic/internal/platform/logging"
	"github.com/vovakirdan/meowgic/internal/registry"
)

//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . InputSource
//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . FrameSink

// InputSource supplies the actions for each frame.
type InputSource interface {
	// Next returns the input for the given frame index.
	Next(frame int) core.InputFrame
}

// FrameSink receives rendered frames.
type FrameSink interface {
	WriteFrame(frame int, state core.GameState, screen *core.Screen) error
}

// Options controls a headless run.
type Options struct {
	Frames         int           // Number of frames to simulate
	Dt             time.Duration // Simulated time per frame
	RenderEvery    int           // Render every N frames; 0 disables rendering
	StopOnGameOver bool
	Logger         *log.Logger
}

// Summary describes a finished run.
type Summary struct {
	Frames int
	Events int
	State  core.GameState
}

// ErrNoFrames is returned when Options.Frames is not positive.
var ErrNoFrames = errors.New("headless: frame count must be positive")

// Run steps the game for opts.Frames frames. It stops early when ctx is
// cancelled or, with StopOnGameOver, when the run ends. The game must already
// be reset.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, in InputSource, sink FrameSink, opts Options) (Summary, error) {
	var sum Summary
	if opts.Frames <= 0 {
		return sum, ErrNoFrames
	}
	if opts.Dt <= 0 {
		opts.Dt = cfg.TickInterval()
	}

	var screen *core.Screen
	if sink != nil && opts.RenderEvery > 0 {
		screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	}

	for frame := 0; frame < opts.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return sum, fmt.Errorf("headless: stopped at frame %d: %w", frame, err)
		}

		var input core.InputFrame
		if in != nil {
			input = in.Next(frame)
		}
		result := game.Step(input, opts.Dt)
		sum.Frames++
		sum.Events += len(result.Events)
		sum.State = result.State
		if opts.Logger != nil {
			logging.Events(opts.Logger, result.Events)
		}

		if screen != nil && (frame+1)%opts.RenderEvery == 0 {
			screen.Clear()
			game.Render(screen)
			if err := sink.WriteFrame(frame, result.State, screen); err != nil {
				return sum, fmt.Errorf("headless: write frame %d: %w", frame, err)
			}
		}

		if opts.StopOnGameOver && result.State.GameOver {
			break
		}
	}
	return sum, nil
}
