package meowgic

import (
	"time"

	"github.com/vovakirdan/meowgic/internal/config"
	"github.com/vovakirdan/meowgic/internal/core"
	"github.com/vovakirdan/meowgic/internal/registry"
)

const (
	minZoom  = 0.5
	maxZoom  = 4.0
	zoomStep = 1.25
)

// Package-level settings applied by the CLI before the platform creates the game.
var (
	configured *config.MeowgicConfig
	startCheat bool
)

// Configure sets the tuning used by games created through the registry.
func Configure(cfg config.MeowgicConfig) {
	configured = &cfg
}

// SetStartCheat turns the magnet bubble on at the start of every run.
func SetStartCheat(on bool) {
	startCheat = on
}

// Game adapts the World to the platform's registry.Game interface.
// It owns the renderer-only state: camera zoom, pause and the FPS meter.
type Game struct {
	cfg    config.MeowgicConfig
	seed   int64
	runs   int
	world  *World
	frame  Frame
	paused bool
	zoom   float64
	fps    float64
}

// New creates a game with the configured tuning, or the defaults.
func New() *Game {
	if configured != nil {
		return NewWithConfig(*configured)
	}
	return NewWithConfig(config.DefaultMeowgicConfig())
}

// NewWithConfig creates a game with explicit tuning.
func NewWithConfig(cfg config.MeowgicConfig) *Game {
	return &Game{cfg: cfg, zoom: 1}
}

func init() {
	registry.Register("meowgic", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "meowgic"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Meowgic Catch"
}

// Reset starts a new run with the runtime seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.seed = rc.Seed
	g.runs = 0
	g.world = NewWorld(g.cfg, rc.Seed)
	g.world.SetCheat(startCheat)
	g.paused = false
	g.zoom = 1
	g.fps = 0
	g.frame = g.world.Frame()
}

// Step converts the input frame to commands and advances the world by the wall-clock delta.
// While paused the world does not advance, so simulation time stays frozen.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}

	switch {
	case in.Has(core.ActionZoomIn):
		g.zoom = core.ClampF(g.zoom*zoomStep, minZoom, maxZoom)
	case in.Has(core.ActionZoomOut):
		g.zoom = core.ClampF(g.zoom/zoomStep, minZoom, maxZoom)
	}

	if in.Has(core.ActionPause) && g.world.State() == StatePlaying {
		g.paused = !g.paused
	}

	var events []core.Event
	switch {
	case in.Has(core.ActionRestart):
		g.restart()
		events = []core.Event{{Kind: EventReset, Value: g.runs}}
	case g.paused:
		// Frozen
	default:
		events = g.world.Step(Commands(in), dt.Seconds())
	}

	g.measure(dt)
	g.frame = g.world.Frame()
	g.frame.HUD.FPS = g.fps
	g.frame.HUD.Paused = g.paused

	return core.StepResult{State: g.State(), Events: events}
}

// restart begins the next run of the session with a fresh layout. The run seed is
// derived from the runtime seed, so a scripted session still replays exactly.
func (g *Game) restart() {
	cheat := g.world.Cheat()
	g.runs++
	g.world = NewWorld(g.cfg, runSeed(g.seed, g.runs))
	g.world.SetCheat(cheat)
	g.paused = false
}

// runSeed spreads consecutive run numbers across the seed space.
func runSeed(seed int64, run int) int64 {
	return int64(uint64(seed) + uint64(run)*0x9E3779B97F4A7C15) //#nosec G115 -- seed mixing, wraparound intended
}

// measure keeps an exponential moving average of the frame rate.
func (g *Game) measure(dt time.Duration) {
	if dt <= 0 {
		return
	}
	inst := 1 / dt.Seconds()
	if g.fps == 0 {
		g.fps = inst
		return
	}
	g.fps = g.fps*0.9 + inst*0.1
}

// Render draws the latest frame.
func (g *Game) Render(dst *core.Screen) {
	renderFrame(dst, &g.frame, g.zoom)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	s := g.world.Session()
	return core.GameState{
		Score:    s.Score,
		Lives:    s.Lives,
		GameOver: s.State == StateGameOver,
		Paused:   g.paused,
	}
}

// Frame returns the latest snapshot.
func (g *Game) Frame() Frame {
	return g.frame
}

// Zoom returns the camera zoom factor.
func (g *Game) Zoom() float64 {
	return g.zoom
}

// actionCommands orders command application within one frame: turning happens before moving.
var actionCommands = []struct {
	action core.Action
	cmd    Command
}{
	{core.ActionRestart, CmdReset},
	{core.ActionRotateLeft, CmdRotateLeft},
	{core.ActionRotateRight, CmdRotateRight},
	{core.ActionMoveForward, CmdMoveForward},
	{core.ActionMoveBackward, CmdMoveBackward},
	{core.ActionJump, CmdJump},
	{core.ActionMeow, CmdMeow},
	{core.ActionDropDecoy, CmdDropDecoy},
	{core.ActionToggleCheat, CmdToggleCheat},
}

// Commands expands an input frame into engine commands. Repeated key presses within
// one frame become repeated commands.
func Commands(in core.InputFrame) []Command {
	var cmds []Command
	for _, ac := range actionCommands {
		for range in.Count(ac.action) {
			cmds = append(cmds, ac.cmd)
		}
	}
	return cmds
}
