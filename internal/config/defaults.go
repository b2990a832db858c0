package config

import (
	_ "embed"
)

//go:embed defaults/letterfall.yaml
var defaultLetterfallYAML []byte

// Default returns the default letterfall configuration, mirroring the
// embedded YAML.
func Default() Config {
	return Config{
		Pool: PoolConfig{
			InitialSize:       12,
			MaxSize:           48,
			CleanupEveryTicks: 180,
		},
		Spawn: SpawnConfig{
			Intervals: SpeedValues{
				Slow:   1.1,
				Normal: 0.8,
				Fast:   0.55,
			},
			FallSpeeds: SpeedValues{
				Slow:   3.0,
				Normal: 4.5,
				Fast:   6.5,
			},
			MaxBurst:       2,
			VelocityJitter: 0.25,
		},
		Fairness: FairnessConfig{
			StarvationSeconds: 4.0,
			PulseSeconds:      3.0,
		},
		Catch: CatchConfig{
			RadiusX: 1.5,
			RadiusY: 1.5,
		},
		Difficulty: DifficultyLevels{
			Easy: DifficultyParams{
				Speed:           SpeedSlow,
				NoiseLevel:      0.35,
				StartingCredits: 12,
				MissPenalty:     1,
			},
			Normal: DifficultyParams{
				Speed:           SpeedNormal,
				NoiseLevel:      0.5,
				StartingCredits: 10,
				MissPenalty:     1,
			},
			Hard: DifficultyParams{
				Speed:           SpeedFast,
				NoiseLevel:      0.65,
				StartingCredits: 8,
				MissPenalty:     2,
			},
		},
	}
}
