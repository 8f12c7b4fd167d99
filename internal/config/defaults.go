package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in tuning, used when the embedded
// YAML cannot be parsed. Keep it in sync with defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			InitialSpeed:   0.03,
			SpeedIncrement: 0.0000005,
			ScoreRate:      0.01,
		},
		Obstacles: RunnerObstacles{
			Width:    3,
			SpawnGap: 24,
		},
		Player: RunnerPlayer{
			X:    3,
			Size: 2,
		},
		Palette: []string{"#FF6B6B", "#4ECDC4"},
	}
}
