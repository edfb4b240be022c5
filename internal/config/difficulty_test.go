package config

import "testing"

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	dm := NewDifficultyManager(DefaultMeowgicConfig().Difficulty)
	if dm.IsEnabled() {
		t.Fatal("progression should be off by default")
	}
	if got := dm.Speed(70, 500, 600); got != 70 {
		t.Errorf("Speed() = %v, expected base 70", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		score int
		level float64
		speed float64
	}{
		{0, 0, 70},
		{50, 0.5, 105},
		{100, 1, 140},
		{400, 1, 140}, // clamped
	}
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got != tc.level {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.level)
		}
		if got := dm.Speed(70, tc.score, 0); got != tc.speed {
			t.Errorf("Speed(70, %d) = %v, expected %v", tc.score, got, tc.speed)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 60},
		Scaling:      ScalingConfig{SpeedMultiplier: 2.0},
	})
	if got := dm.Level(0, 30); got != 0.75 {
		t.Errorf("Level after 30s = %v, expected 0.75", got)
	}
}
