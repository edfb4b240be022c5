package meowgic

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/meowgic/internal/config"
)

func TestPhaseCycle(t *testing.T) {
	e := NewEnvironment(config.DefaultMeowgicConfig().Environment)
	rng := rand.New(rand.NewSource(1))

	steps := []struct {
		dt   float64
		want Phase
	}{
		{29, PhaseMorning},
		{1, PhaseAfternoon},
		{30, PhaseEvening},
		{30, PhaseMorning},
	}
	for _, s := range steps {
		e.Advance(s.dt, rng)
		if e.Phase != s.want {
			t.Errorf("at %.0fs phase = %s, expected %s", e.Elapsed, e.Phase, s.want)
		}
	}
}

func TestPhaseNamesAreCanonical(t *testing.T) {
	names := map[Phase]string{PhaseMorning: "morning", PhaseAfternoon: "afternoon", PhaseEvening: "evening"}
	for p, want := range names {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, expected %q", p, p.String(), want)
		}
		if _, ok := phaseColors[p]; !ok {
			t.Errorf("no HUD color for phase %s", p)
		}
	}
}

func TestWeatherRollsOnSimulationInterval(t *testing.T) {
	cfg := config.DefaultMeowgicConfig().Environment
	cfg.WeatherChangeChance = 1
	e := NewEnvironment(cfg)
	rng := rand.New(rand.NewSource(99))

	e.Advance(cfg.WeatherInterval-1, rng)
	if e.Weather != WeatherClear {
		t.Fatalf("weather changed before the first interval: %s", e.Weather)
	}

	seen := map[Weather]bool{}
	for range 60 {
		e.Advance(cfg.WeatherInterval, rng)
		seen[e.Weather] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected weather to vary over 60 rolls, saw %v", seen)
	}
}

func TestWeatherNeverChangesWithZeroChance(t *testing.T) {
	cfg := config.DefaultMeowgicConfig().Environment
	cfg.WeatherChangeChance = 0
	e := NewEnvironment(cfg)
	rng := rand.New(rand.NewSource(5))

	for range 100 {
		if e.Advance(cfg.WeatherInterval, rng) {
			t.Fatal("Advance reported a weather change")
		}
	}
	if e.Weather != WeatherClear {
		t.Errorf("weather = %s, expected clear", e.Weather)
	}
}
