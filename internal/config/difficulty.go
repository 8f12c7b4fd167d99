package config

import "fmt"

// DifficultyPreset names a predefined scaling of the speed ramp.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScale holds the multipliers applied to initial speed and speed increment.
var presetScale = map[DifficultyPreset][2]float64{
	DifficultyEasy:   {0.75, 0.5},
	DifficultyNormal: {1.0, 1.0},
	DifficultyHard:   {1.3, 2.0},
}

// ParsePreset converts a flag value into a preset. The empty string means
// no preset and is returned as-is.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := presetScale[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPreset scales the speed ramp of cfg. Unknown or empty presets leave
// cfg untouched. Ratios between the constants are preserved, so speed
// stays non-decreasing under every preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	scale, ok := presetScale[preset]
	if !ok {
		return
	}
	cfg.Physics.InitialSpeed *= scale[0]
	cfg.Physics.SpeedIncrement *= scale[1]
}
