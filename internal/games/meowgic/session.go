package meowgic

import (
	"github.com/vovakirdan/meowgic/internal/config"
)

// State is the session state machine.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// PowerUp identifies a timed effect window.
type PowerUp int

const (
	PowerUpNone PowerUp = iota
	PowerUpDoubleScore
	PowerUpTenX
	PowerUpSpeedBoost
	numPowerUps
)

func (p PowerUp) String() string {
	switch p {
	case PowerUpDoubleScore:
		return "double"
	case PowerUpTenX:
		return "tenx"
	case PowerUpSpeedBoost:
		return "speed"
	default:
		return "none"
	}
}

// Session holds score, lives, power-up windows and action cooldowns.
// All timestamps are absolute simulation seconds.
type Session struct {
	cfg config.MeowgicConfig

	Score int
	Lives int
	State State

	powerUntil   [numPowerUps]float64
	hasDamaged   bool
	lastDamageAt float64
	meowReadyAt  float64
}

// NewSession starts a fresh session.
func NewSession(cfg config.MeowgicConfig) *Session {
	s := &Session{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores score, lives, timers and the Playing state.
func (s *Session) Reset() {
	s.Score = 0
	s.Lives = s.cfg.Session.Lives
	s.State = StatePlaying
	s.powerUntil = [numPowerUps]float64{}
	s.hasDamaged = false
	s.lastDamageAt = 0
	s.meowReadyAt = 0
}

// Activate starts or refreshes a power-up window at now.
func (s *Session) Activate(p PowerUp, now float64) {
	if p <= PowerUpNone || p >= numPowerUps {
		return
	}
	s.powerUntil[p] = now + s.cfg.PowerUps.Duration
}

// Active reports whether the power-up window is open at now.
func (s *Session) Active(p PowerUp, now float64) bool {
	if p <= PowerUpNone || p >= numPowerUps {
		return false
	}
	return now < s.powerUntil[p]
}

// Remaining returns the seconds left on a power-up window.
func (s *Session) Remaining(p PowerUp, now float64) float64 {
	if !s.Active(p, now) {
		return 0
	}
	return s.powerUntil[p] - now
}

// Multiplier returns the score multiplier. The windows take precedence, they never stack.
func (s *Session) Multiplier(now float64) int {
	switch {
	case s.Active(PowerUpTenX, now):
		return 10
	case s.Active(PowerUpDoubleScore, now):
		return 2
	default:
		return 1
	}
}

// SpeedMultiplier returns the cat's step multiplier.
func (s *Session) SpeedMultiplier(now float64) float64 {
	if s.Active(PowerUpSpeedBoost, now) {
		return s.cfg.PowerUps.SpeedMult
	}
	return 1
}

// AddPoints credits base points times the current multiplier and returns the gain.
func (s *Session) AddPoints(base int, now float64) int {
	if base <= 0 {
		return 0
	}
	gained := base * s.Multiplier(now)
	s.Score += gained
	return gained
}

// TryDamage takes one life unless the invulnerability window from the last hit is still open.
func (s *Session) TryDamage(now float64) bool {
	if s.State == StateGameOver || s.Lives <= 0 {
		return false
	}
	if s.hasDamaged && now-s.lastDamageAt < s.cfg.Session.HitIFrames {
		return false
	}
	s.hasDamaged = true
	s.lastDamageAt = now
	s.Lives--
	return true
}

// TryMeow starts the meow cooldown if it has elapsed.
func (s *Session) TryMeow(now float64) bool {
	if now < s.meowReadyAt {
		return false
	}
	s.meowReadyAt = now + s.cfg.Meow.Cooldown
	return true
}

// MeowCooldown returns the seconds until meow is available again.
func (s *Session) MeowCooldown(now float64) float64 {
	if now >= s.meowReadyAt {
		return 0
	}
	return s.meowReadyAt - now
}

// CheckGameOver moves to GameOver once lives are exhausted and reports the transition.
func (s *Session) CheckGameOver() bool {
	if s.State == StatePlaying && s.Lives <= 0 {
		s.State = StateGameOver
		return true
	}
	return false
}
