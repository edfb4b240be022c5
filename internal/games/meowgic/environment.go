package meowgic

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/meowgic/internal/config"
)

// Phase is the time of day.
type Phase int

const (
	PhaseMorning Phase = iota
	PhaseAfternoon
	PhaseEvening
	numPhases
)

// String returns the canonical phase name shared by the HUD and renderer.
func (p Phase) String() string {
	switch p {
	case PhaseMorning:
		return "morning"
	case PhaseAfternoon:
		return "afternoon"
	case PhaseEvening:
		return "evening"
	default:
		return "unknown"
	}
}

// Weather is the current weather mode.
type Weather int

const (
	WeatherClear Weather = iota
	WeatherFog
	WeatherRain
	numWeathers
)

func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherFog:
		return "fog"
	case WeatherRain:
		return "rain"
	default:
		return "unknown"
	}
}

// Environment tracks accumulated simulation time, the day phase and weather.
type Environment struct {
	cfg config.EnvConfig

	Elapsed float64
	Phase   Phase
	Weather Weather

	nextWeatherRoll float64
}

// NewEnvironment creates a clear morning at time zero.
func NewEnvironment(cfg config.EnvConfig) *Environment {
	return &Environment{
		cfg:             cfg,
		nextWeatherRoll: cfg.WeatherInterval,
	}
}

// Advance accumulates dt and recomputes the phase. Every weather interval of
// simulation time the weather is re-rolled with the configured probability.
// It reports whether the weather changed.
func (e *Environment) Advance(dt float64, rng *rand.Rand) bool {
	e.Elapsed += dt
	e.Phase = Phase(int(math.Floor(e.Elapsed/e.cfg.PhaseDuration)) % int(numPhases))

	changed := false
	for e.Elapsed >= e.nextWeatherRoll {
		e.nextWeatherRoll += e.cfg.WeatherInterval
		if rng.Float64() < e.cfg.WeatherChangeChance {
			w := Weather(rng.Intn(int(numWeathers)))
			if w != e.Weather {
				changed = true
			}
			e.Weather = w
		}
	}
	return changed
}
