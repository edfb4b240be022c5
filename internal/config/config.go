// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// MeowgicConfig contains all tuning for the Meowgic Catch simulation.
// Distances are in world units, durations in seconds, speeds in units per second.
type MeowgicConfig struct {
	Arena       ArenaConfig      `yaml:"arena"`
	Timing      TimingConfig     `yaml:"timing"`
	Cat         CatConfig        `yaml:"cat"`
	Fish        FishConfig       `yaml:"fish"`
	PowerUps    PowerUpConfig    `yaml:"powerups"`
	Dogs        DogConfig        `yaml:"dogs"`
	Session     SessionConfig    `yaml:"session"`
	Meow        MeowConfig       `yaml:"meow"`
	Decoy       DecoyConfig      `yaml:"decoy"`
	Cheat       CheatConfig      `yaml:"cheat"`
	Environment EnvConfig        `yaml:"environment"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the square playing field.
type ArenaConfig struct {
	CellSize      float64 `yaml:"cell_size"`
	GridHalfCells int     `yaml:"grid_half_cells"`
}

// Extent returns the half-width of the playable square.
func (a ArenaConfig) Extent() float64 {
	return float64(2*a.GridHalfCells+1) * a.CellSize * 0.5
}

// TimingConfig bounds the per-frame step.
type TimingConfig struct {
	MaxFrameDt float64 `yaml:"max_frame_dt"` // Upper bound for one step after a stall
}

// CatConfig defines the player body and jump.
type CatConfig struct {
	BodyRadius   float64 `yaml:"body_radius"`
	BaseHeight   float64 `yaml:"base_height"`
	JumpHeight   float64 `yaml:"jump_height"`
	JumpDuration float64 `yaml:"jump_duration"`
	JumpCooldown float64 `yaml:"jump_cooldown"`
}

// FishConfig defines collectible spawning and scoring.
type FishConfig struct {
	Count          int     `yaml:"count"`
	PickupRadius   float64 `yaml:"pickup_radius"`
	JumpPickupMult float64 `yaml:"jump_pickup_mult"` // Pickup radius multiplier while airborne
	FastSpeed      float64 `yaml:"fast_speed"`
	TimedTTLMin    float64 `yaml:"timed_ttl_min"`
	TimedTTLMax    float64 `yaml:"timed_ttl_max"`
	ProbFast       float64 `yaml:"prob_fast"`
	ProbTimed      float64 `yaml:"prob_timed"`
	ProbGold       float64 `yaml:"prob_gold"` // Normal takes the remainder
	PointsNormal   int     `yaml:"points_normal"`
	PointsFast     int     `yaml:"points_fast"`
	PointsTimed    int     `yaml:"points_timed"`
}

// PowerUpConfig defines timed power-up windows.
type PowerUpConfig struct {
	Duration  float64 `yaml:"duration"`
	SpeedMult float64 `yaml:"speed_mult"`
}

// DogConfig defines the pursuer pack.
type DogConfig struct {
	Count              int     `yaml:"count"`
	Radius             float64 `yaml:"radius"`
	Height             float64 `yaml:"height"` // Height of the dog's center above ground
	Speed              float64 `yaml:"speed"`
	MinSeparation      float64 `yaml:"min_separation"`
	PushSpeed          float64 `yaml:"push_speed"`
	StealIntervalMin   float64 `yaml:"steal_interval_min"`
	StealIntervalMax   float64 `yaml:"steal_interval_max"`
	StealRadiusMult    float64 `yaml:"steal_radius_mult"`
	CollisionHeightTol float64 `yaml:"collision_height_tol"`
}

// SessionConfig defines lives and damage.
type SessionConfig struct {
	Lives      int     `yaml:"lives"`
	HitIFrames float64 `yaml:"hit_iframes"`
}

// MeowConfig defines the stun shout.
type MeowConfig struct {
	Range    float64 `yaml:"range"`
	Stun     float64 `yaml:"stun"`
	Cooldown float64 `yaml:"cooldown"`
}

// DecoyConfig defines the dog decoy.
type DecoyConfig struct {
	Lifetime float64 `yaml:"lifetime"`
}

// CheatConfig defines the magnet bubble.
type CheatConfig struct {
	BubbleRadius float64 `yaml:"bubble_radius"`
	MagnetSpeed  float64 `yaml:"magnet_speed"`
}

// EnvConfig defines the day cycle and weather.
type EnvConfig struct {
	PhaseDuration       float64 `yaml:"phase_duration"`
	WeatherInterval     float64 `yaml:"weather_interval"`
	WeatherChangeChance float64 `yaml:"weather_change_chance"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to dog speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports every tuning value that would break the simulation, joined into one error.
func (c MeowgicConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	ordered := func(name string, lo, hi float64) {
		if lo < 0 || hi < lo {
			errs = append(errs, fmt.Errorf("%s range [%v, %v] is invalid", name, lo, hi))
		}
	}

	positive("arena.cell_size", c.Arena.CellSize)
	if c.Arena.GridHalfCells < 0 {
		errs = append(errs, fmt.Errorf("arena.grid_half_cells must not be negative, got %d", c.Arena.GridHalfCells))
	}
	positive("timing.max_frame_dt", c.Timing.MaxFrameDt)
	positive("cat.jump_duration", c.Cat.JumpDuration)
	positive("fish.pickup_radius", c.Fish.PickupRadius)
	positive("powerups.duration", c.PowerUps.Duration)
	positive("environment.phase_duration", c.Environment.PhaseDuration)
	positive("environment.weather_interval", c.Environment.WeatherInterval)
	ordered("fish.timed_ttl", c.Fish.TimedTTLMin, c.Fish.TimedTTLMax)
	ordered("dogs.steal_interval", c.Dogs.StealIntervalMin, c.Dogs.StealIntervalMax)

	if c.Fish.Count <= 0 {
		errs = append(errs, fmt.Errorf("fish.count must be positive, got %d", c.Fish.Count))
	}
	if c.Dogs.Count < 0 {
		errs = append(errs, fmt.Errorf("dogs.count must not be negative, got %d", c.Dogs.Count))
	}
	if c.Session.Lives <= 0 {
		errs = append(errs, fmt.Errorf("session.lives must be positive, got %d", c.Session.Lives))
	}

	probs := []float64{c.Fish.ProbFast, c.Fish.ProbTimed, c.Fish.ProbGold, c.Environment.WeatherChangeChance}
	for _, p := range probs {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("probability %v outside [0, 1]", p))
		}
	}
	if sum := c.Fish.ProbFast + c.Fish.ProbTimed + c.Fish.ProbGold; sum > 1 {
		errs = append(errs, fmt.Errorf("fish kind probabilities sum to %v, more than 1", sum))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
