package meowgic

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/meowgic/internal/config"
	"github.com/vovakirdan/meowgic/internal/core"
)

// Command is a discrete player intent consumed by one step.
type Command int

const (
	CmdRotateLeft Command = iota + 1
	CmdRotateRight
	CmdMoveForward
	CmdMoveBackward
	CmdJump
	CmdToggleCheat
	CmdMeow
	CmdDropDecoy
	CmdReset
)

// Event kinds reported by Step.
const (
	EventReset        = "reset"
	EventLifeLost     = "life_lost"
	EventGameOver     = "game_over"
	EventPowerUp      = "powerup"
	EventScore        = "score"
	EventSteal        = "steal"
	EventRespawn      = "respawn"
	EventMeow         = "meow"
	EventDecoy        = "decoy"
	EventDecoyExpired = "decoy_expired"
	EventWeather      = "weather"
	EventCheat        = "cheat"
)

// World is the single aggregate the step mutates. Nothing outside it holds game state.
type World struct {
	cfg    config.MeowgicConfig
	seed   int64
	extent float64

	rng        *rand.Rand
	now        float64
	env        *Environment
	player     *Player
	field      *Field
	pack       *Pack
	session    *Session
	decoy      *Decoy
	cheat      bool
	difficulty *config.DifficultyManager

	events []core.Event
}

// NewWorld builds a fresh world. The same config and seed always produce the same run
// for the same command and dt sequence.
func NewWorld(cfg config.MeowgicConfig, seed int64) *World {
	w := &World{
		cfg:    cfg,
		seed:   seed,
		extent: cfg.Arena.Extent(),
	}
	w.reset()
	return w
}

// reset reinitializes everything except the cheat toggle.
func (w *World) reset() {
	w.rng = rand.New(rand.NewSource(w.seed)) //#nosec G404 -- gameplay randomness, not security
	w.now = 0
	w.env = NewEnvironment(w.cfg.Environment)
	w.player = NewPlayer(w.cfg.Cat, w.cfg.Arena.CellSize, w.extent)
	w.field = NewField(w.cfg.Fish, w.extent)
	w.pack = NewPack(w.cfg.Dogs, w.extent)
	w.session = NewSession(w.cfg)
	w.decoy = nil
	w.difficulty = config.NewDifficultyManager(w.cfg.Difficulty)

	w.field.SpawnBatch(w.cfg.Fish.Count, w.now, w.rng)
	w.pack.EnsureCount(w.cfg.Dogs.Count, w.now, w.rng)
}

// Now returns the accumulated simulation time in seconds.
func (w *World) Now() float64 {
	return w.now
}

// State returns the session state.
func (w *World) State() State {
	return w.session.State
}

// SetCheat turns the magnet bubble on or off.
func (w *World) SetCheat(on bool) {
	w.cheat = on
}

// Cheat reports whether the magnet bubble is on.
func (w *World) Cheat() bool {
	return w.cheat
}

// Session exposes score and lives for the platform.
func (w *World) Session() *Session {
	return w.session
}

// Step applies cmds and advances the simulation by dt seconds.
// A reset is honored in any state and consumes the frame. Other commands apply only while
// playing, at the current time, before time advances.
func (w *World) Step(cmds []Command, dt float64) []core.Event {
	w.events = nil

	for _, c := range cmds {
		if c == CmdReset {
			w.reset()
			w.emit(EventReset, 0)
			return w.events
		}
	}

	// 1. Game over freezes everything
	if w.session.State == StateGameOver {
		return w.events
	}

	for _, c := range cmds {
		w.apply(c)
	}

	dt = core.ClampF(dt, 0, w.cfg.Timing.MaxFrameDt)
	w.now += dt
	now := w.now

	// 2. Speed boost
	w.player.SpeedMult = w.session.SpeedMultiplier(now)

	// 3. Clock, cat, fish
	if w.env.Advance(dt, w.rng) {
		w.emit(EventWeather, int(w.env.Weather))
	}
	w.player.Advance(dt, now)
	w.field.Advance(dt, now)

	// 4. Pack pursuit
	target := w.pursuitTarget()
	w.pack.EnsureCount(w.cfg.Dogs.Count, now, w.rng)
	speed := w.difficulty.Speed(w.cfg.Dogs.Speed, w.session.Score, now)
	w.pack.Advance(dt, target, now, speed)
	w.pack.Separate(dt)

	// 5. Steals
	w.resolveSteals(now)

	// 6. Damage
	if !w.player.Jumping() {
		w.resolveDamage(now)
	}

	// 7. Decoy expiry
	if w.decoy != nil && !w.decoy.Alive(now) {
		w.decoy = nil
		w.emit(EventDecoyExpired, 0)
	}

	// 8. Pickups
	w.resolvePickups(now)

	// 9. Magnet bubble
	if w.cheat {
		w.field.MagnetPull(w.player.Pos, w.cfg.Cheat.BubbleRadius, w.cfg.Cheat.MagnetSpeed, dt)
	}

	// 10. Respawn
	if w.field.Remaining() == 0 {
		w.field.SpawnBatch(w.cfg.Fish.Count, now, w.rng)
		w.emit(EventRespawn, w.cfg.Fish.Count)
	}

	// 11. Game over
	if w.session.CheckGameOver() {
		w.emit(EventGameOver, w.session.Score)
	}

	return w.events
}

// apply executes a single command. Rejected commands are silent no-ops.
func (w *World) apply(c Command) {
	now := w.now
	switch c {
	case CmdRotateLeft:
		w.player.Rotate(90)
	case CmdRotateRight:
		w.player.Rotate(-90)
	case CmdMoveForward:
		w.player.Move(1)
	case CmdMoveBackward:
		w.player.Move(-1)
	case CmdJump:
		w.player.StartJump(now)
	case CmdToggleCheat:
		w.cheat = !w.cheat
		w.emit(EventCheat, boolToInt(w.cheat))
	case CmdMeow:
		if w.session.TryMeow(now) {
			n := w.pack.StunWithin(w.player.Pos, w.cfg.Meow.Range, now+w.cfg.Meow.Stun)
			w.emit(EventMeow, n)
		}
	case CmdDropDecoy:
		w.decoy = &Decoy{Pos: w.player.Pos, ExpiresAt: now + w.cfg.Decoy.Lifetime}
		w.emit(EventDecoy, 0)
	}
}

// pursuitTarget is the live decoy if there is one, else the cat.
func (w *World) pursuitTarget() mgl64.Vec2 {
	if w.decoy.Alive(w.now) {
		return w.decoy.Pos
	}
	return w.player.Pos
}

func (w *World) resolveSteals(now float64) {
	radius := w.cfg.Fish.PickupRadius * w.cfg.Dogs.StealRadiusMult
	for i := 0; i < w.pack.Len(); i++ {
		if !w.pack.StealReady(i, now) || w.pack.IsStunned(i, now) {
			continue
		}
		stolen := w.field.CollectWithin(w.pack.Dog(i).Pos, radius).Total()
		w.pack.ScheduleSteal(i, now, w.rng)
		if stolen > 0 {
			w.emit(EventSteal, stolen)
		}
	}
}

// resolveDamage applies at most one hit per frame. The first touching dog consumes the
// frame whether or not the invulnerability window lets the hit through.
func (w *World) resolveDamage(now float64) {
	reach := w.cfg.Cat.BodyRadius + w.cfg.Dogs.Radius
	reach2 := reach * reach
	height := w.player.Height()
	for i := 0; i < w.pack.Len(); i++ {
		if w.pack.IsStunned(i, now) {
			continue
		}
		if w.pack.Dog(i).Pos.Sub(w.player.Pos).LenSqr() > reach2 {
			continue
		}
		if math.Abs(height-w.cfg.Dogs.Height) > w.cfg.Dogs.CollisionHeightTol {
			continue
		}
		if w.session.TryDamage(now) {
			w.emit(EventLifeLost, w.session.Lives)
		}
		return
	}
}

// resolvePickups claims fish near the cat, opens power-up windows and then scores the rest.
func (w *World) resolvePickups(now float64) {
	radius := w.cfg.Fish.PickupRadius
	if w.player.Jumping() {
		radius *= w.cfg.Fish.JumpPickupMult
	}
	counts := w.field.CollectWithin(w.player.Pos, radius)
	if counts.Total() == 0 {
		return
	}

	for k := KindNormal; k < numKinds; k++ {
		if counts[k] == 0 {
			continue
		}
		if p := k.Rule().Grants; p != PowerUpNone {
			w.session.Activate(p, now)
			w.emit(EventPowerUp, int(p))
		}
	}

	if gained := w.session.AddPoints(w.field.Points(counts), now); gained > 0 {
		w.emit(EventScore, gained)
	}
}

func (w *World) emit(kind string, value int) {
	w.events = append(w.events, core.Event{Kind: kind, Value: value})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
