package config

import (
	_ "embed"
)

//go:embed defaults/meowgic.yaml
var defaultMeowgicYAML []byte

// DefaultMeowgicConfig returns the default Meowgic Catch configuration.
// It mirrors defaults/meowgic.yaml and is used when the embedded file cannot be parsed.
func DefaultMeowgicConfig() MeowgicConfig {
	return MeowgicConfig{
		Arena: ArenaConfig{
			CellSize:      60,
			GridHalfCells: 8,
		},
		Timing: TimingConfig{
			MaxFrameDt: 0.05,
		},
		Cat: CatConfig{
			BodyRadius:   40,
			BaseHeight:   30,
			JumpHeight:   80,
			JumpDuration: 0.6,
			JumpCooldown: 0.2,
		},
		Fish: FishConfig{
			Count:          17,
			PickupRadius:   36,
			JumpPickupMult: 1.5,
			FastSpeed:      220,
			TimedTTLMin:    4,
			TimedTTLMax:    7,
			ProbFast:       0.25,
			ProbTimed:      0.17,
			ProbGold:       0.03,
			PointsNormal:   1,
			PointsFast:     2,
			PointsTimed:    2,
		},
		PowerUps: PowerUpConfig{
			Duration:  10,
			SpeedMult: 1.6,
		},
		Dogs: DogConfig{
			Count:              6,
			Radius:             20,
			Height:             20,
			Speed:              70,
			MinSeparation:      50,
			PushSpeed:          120,
			StealIntervalMin:   0.6,
			StealIntervalMax:   1.5,
			StealRadiusMult:    0.8,
			CollisionHeightTol: 25,
		},
		Session: SessionConfig{
			Lives:      5,
			HitIFrames: 0.6,
		},
		Meow: MeowConfig{
			Range:    140,
			Stun:     2,
			Cooldown: 6,
		},
		Decoy: DecoyConfig{
			Lifetime: 5,
		},
		Cheat: CheatConfig{
			BubbleRadius: 120,
			MagnetSpeed:  240,
		},
		Environment: EnvConfig{
			PhaseDuration:       30,
			WeatherInterval:     12,
			WeatherChangeChance: 0.35,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "meowgic":
		return defaultMeowgicYAML
	default:
		return nil
	}
}
