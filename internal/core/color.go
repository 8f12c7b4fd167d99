package core

import "fmt"

// Color is a terminal color in a form lipgloss understands:
// a hex string ("#FF6B6B") or an ANSI code ("9").
// The empty Color means the terminal default.
type Color string

// ColorDefault leaves the cell in the terminal's default color.
const ColorDefault Color = ""

// Palette is the fixed pair of colors shared by the player and obstacles.
type Palette [2]Color

// DefaultPalette returns the coral/teal pair the game ships with.
func DefaultPalette() Palette {
	return Palette{"#FF6B6B", "#4ECDC4"}
}

// Other returns the palette entry that is not c.
// A color outside the palette maps to the first entry.
func (p Palette) Other(c Color) Color {
	if c == p[0] {
		return p[1]
	}
	return p[0]
}

// Contains reports whether c is one of the palette entries.
func (p Palette) Contains(c Color) bool {
	return c == p[0] || c == p[1]
}

// Validate checks that both entries are set and distinct.
func (p Palette) Validate() error {
	if p[0] == "" || p[1] == "" {
		return fmt.Errorf("palette: both colors must be set, got %q and %q", p[0], p[1])
	}
	if p[0] == p[1] {
		return fmt.Errorf("palette: colors must differ, got %q twice", p[0])
	}
	return nil
}
