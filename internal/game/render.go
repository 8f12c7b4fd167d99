package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/color-runner/internal/core"
)

// Layout rows around the play area.
const (
	hudRows    = 2 // title/score line and the top border
	footerRows = 2 // bottom border and the hint line
)

// Visual characters for rendering.
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	BorderChar   = '─'
)

// HUD colors.
const (
	colorTitle core.Color = "15"
	colorMuted core.Color = "245"
	colorGold  core.Color = "220"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	top := hudRows

	g.drawHUD(dst, snap)
	dst.DrawHLine(0, top-1, dst.Width(), BorderChar)
	dst.DrawHLine(0, top+snap.Height, dst.Width(), BorderChar)

	for _, o := range snap.Obstacles {
		x := int(math.Floor(o.Position))
		w := int(math.Ceil(g.cfg.Obstacles.Width))
		dst.DrawRect(core.NewRect(x, top, w, snap.Height), ObstacleChar, o.Color)
	}

	g.drawPlayer(dst, snap, top)

	hint := "Get ready to match colors!"
	if snap.Phase != PhaseIdle {
		hint = "SPACE or click to switch colors  |  Q to quit"
	}
	dst.DrawTextColored(2, top+snap.Height+1, hint, colorMuted)

	switch snap.Phase {
	case PhaseIdle:
		g.drawCenteredMessage(dst,
			"Welcome to Color Runner!",
			"",
			"Match your color with the obstacles",
			"Press SPACE or click to switch colors",
			"Speed increases as you progress",
			"Try to beat your high score!",
			"",
			"Press ENTER or SPACE to start",
		)
	case PhaseGameOver:
		banner := fmt.Sprintf("High Score: %d", snap.HighScore)
		if snap.NewHighScore {
			banner = "*** New High Score! ***"
		}
		g.drawCenteredMessage(dst,
			"Game Over!",
			"",
			fmt.Sprintf("Final Score: %d", snap.DisplayScore),
			banner,
			"",
			"Press R to play again",
		)
	}
}

// drawHUD renders the title and the score line.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(2, 0, g.Title(), colorTitle)

	scoreText := fmt.Sprintf("Score: %d  High Score: %d ", snap.DisplayScore, snap.HighScore)
	color := colorMuted
	if snap.NewHighScore {
		color = colorGold
	}
	dst.DrawTextColored(dst.Width()-len(scoreText)-1, 0, scoreText, color)
}

// drawPlayer renders the player square centered vertically. Terminal cells
// are about twice as tall as wide, so the square uses half as many rows.
func (g *Game) drawPlayer(dst *core.Screen, snap Snapshot, top int) {
	w := core.Max(int(math.Round(g.cfg.Player.Size)), 1)
	h := core.Max(w/2, 1)
	x := int(math.Floor(g.cfg.Player.X))
	y := top + (snap.Height-h)/2
	dst.DrawRect(core.NewRect(x, y, w, h), PlayerChar, snap.PlayerColor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, l := range lines {
		x := boxX + (boxW-len(l))/2
		color := core.ColorDefault
		if i == 0 {
			color = colorTitle
		}
		dst.DrawTextColored(x, boxY+1+i, l, color)
	}
}
