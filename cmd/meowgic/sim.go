package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/meowgic/internal/core"
	"github.com/vovakirdan/meowgic/internal/platform/headless"
	"github.com/vovakirdan/meowgic/internal/platform/logging"
	"github.com/vovakirdan/meowgic/internal/registry"
)

var (
	flagFrames      int
	flagDt          time.Duration
	flagScript      string
	flagRenderEvery int
	flagStopOnOver  bool
	flagWidth       int
	flagHeight      int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the simulation without a terminal UI, feeding input from a script.

Script lines are a frame index (or inclusive range) followed by action names:

  # walk, turn, then jump while walking
  0-40 MoveForward
  41 RotateLeft
  42-80 MoveForward Jump

Frames can be rendered to stdout as text with --render-every.
Events are logged to stderr.

Examples:
  meowgic sim --seed 7 --frames 600
  meowgic sim --script run.txt --render-every 20`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 1200, "Number of frames to simulate")
	simCmd.Flags().DurationVar(&flagDt, "dt", 50*time.Millisecond, "Simulated time per frame")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Input script (default: no input)")
	simCmd.Flags().IntVar(&flagRenderEvery, "render-every", 0, "Print every Nth frame (0 = never)")
	simCmd.Flags().BoolVar(&flagStopOnOver, "stop-on-game-over", true, "Stop when the run ends")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Render width")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Render height")
}

func runSim(cmd *cobra.Command, args []string) error {
	if _, err := loadTuning(); err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	var input headless.InputSource
	if flagScript != "" {
		f, err := os.Open(flagScript) //#nosec G304 -- path comes from the user's own flag
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		script, err := headless.ParseScript(f)
		f.Close()
		if err != nil {
			return err
		}
		input = script
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{ScreenW: flagWidth, ScreenH: flagHeight, TickRate: flagFPS, Seed: seed}

	game, err := registry.Create("meowgic")
	if err != nil {
		return err
	}
	game.Reset(cfg)

	runID := logging.NewRunID()
	logger = logger.With("run", runID, "game", game.ID())
	logger.Info("sim started", "seed", seed, "frames", flagFrames, "dt", flagDt)

	var out io.Writer = cmd.OutOrStdout()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := headless.Run(ctx, game, cfg, input, headless.NewTextSink(out), headless.Options{
		Frames:         flagFrames,
		Dt:             flagDt,
		RenderEvery:    flagRenderEvery,
		StopOnGameOver: flagStopOnOver,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	logger.Info("sim finished", "frames", sum.Frames, "events", sum.Events)
	fmt.Fprintf(out, "seed %d frames %d score %d lives %d game_over %t\n",
		seed, sum.Frames, sum.State.Score, sum.State.Lives, sum.State.GameOver)
	return nil
}
