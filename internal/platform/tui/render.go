package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-runner/internal/core"
)

// styleCache memoizes one lipgloss style per color seen on screen.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) get(color core.Color) lipgloss.Style {
	if s, ok := c[color]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(string(color)))
	c[color] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := styleCache{}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
