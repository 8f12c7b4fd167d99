package game

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/color-runner/internal/core"
)

// Generator creates obstacles at the right edge of the play area.
// Colors come from a seeded RNG so a given seed replays the same course;
// IDs come from UUIDs so they stay unique across games and sessions.
type Generator struct {
	rng     *rand.Rand
	palette core.Palette
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(seed int64, palette core.Palette) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		palette: palette,
	}
}

// Next returns a new obstacle positioned at width with a uniformly
// chosen palette color.
func (g *Generator) Next(width int) Obstacle {
	return Obstacle{
		ID:       uuid.NewString(),
		Position: float64(width),
		Color:    g.palette[g.rng.Intn(len(g.palette))],
	}
}
