// Package config provides YAML-based tuning configuration for Color Runner.
// All distances are in terminal cells and all times in milliseconds.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/color-runner/internal/core"
)

// RunnerConfig contains all tuning for the game.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Player    RunnerPlayer    `yaml:"player"`
	Palette   []string        `yaml:"palette"`
}

// RunnerPhysics defines the speed ramp and score accrual.
type RunnerPhysics struct {
	InitialSpeed   float64 `yaml:"initial_speed"`   // cells per ms at the start of a game
	SpeedIncrement float64 `yaml:"speed_increment"` // added to speed per elapsed ms
	ScoreRate      float64 `yaml:"score_rate"`      // score units per elapsed ms
}

// RunnerObstacles defines obstacle geometry and spawning.
type RunnerObstacles struct {
	Width    float64 `yaml:"width"`     // horizontal extent in cells
	SpawnGap float64 `yaml:"spawn_gap"` // distance from the right edge the newest obstacle must travel before the next spawns
}

// RunnerPlayer defines the fixed player hitbox.
type RunnerPlayer struct {
	X    float64 `yaml:"x"`    // left edge of the hitbox
	Size float64 `yaml:"size"` // width of the hitbox (drawn as a square)
}

// ColorPalette converts the configured palette into a core.Palette.
// An empty palette falls back to the default colors.
func (c RunnerConfig) ColorPalette() (core.Palette, error) {
	if len(c.Palette) == 0 {
		return core.DefaultPalette(), nil
	}
	if len(c.Palette) != 2 {
		return core.Palette{}, fmt.Errorf("palette: expected 2 colors, got %d", len(c.Palette))
	}
	p := core.Palette{core.Color(c.Palette[0]), core.Color(c.Palette[1])}
	if err := p.Validate(); err != nil {
		return core.Palette{}, err
	}
	return p, nil
}

// Validate reports every problem with the configuration at once.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Physics.InitialSpeed < 0 {
		errs = append(errs, fmt.Errorf("physics.initial_speed must be >= 0, got %v", c.Physics.InitialSpeed))
	}
	if c.Physics.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("physics.speed_increment must be >= 0, got %v", c.Physics.SpeedIncrement))
	}
	if c.Physics.ScoreRate < 0 {
		errs = append(errs, fmt.Errorf("physics.score_rate must be >= 0, got %v", c.Physics.ScoreRate))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.width must be > 0, got %v", c.Obstacles.Width))
	}
	if c.Obstacles.SpawnGap <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_gap must be > 0, got %v", c.Obstacles.SpawnGap))
	}
	if c.Player.X < 0 {
		errs = append(errs, fmt.Errorf("player.x must be >= 0, got %v", c.Player.X))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player.size must be > 0, got %v", c.Player.Size))
	}
	if _, err := c.ColorPalette(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
