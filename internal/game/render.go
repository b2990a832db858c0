package game

import (
	"fmt"
	"strings"

	"github.com/letterfall/letterfall/internal/core"
	"github.com/letterfall/letterfall/internal/engine"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.eng.Snapshot()

	g.drawFieldBorder(dst)
	g.drawEntities(dst, snap)
	g.drawCatcher(dst)
	g.drawSidebar(dst, snap)

	switch snap.Phase {
	case engine.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case engine.PhaseWon:
		g.drawCenteredMessage(dst, "ROUND WON",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case engine.PhaseLost:
		g.drawCenteredMessage(dst, "OUT OF CREDITS",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawFieldBorder frames the playfield.
func (g *Game) drawFieldBorder(dst *core.Screen) {
	box := core.NewRect(g.field.X-1, g.field.Y-1, g.field.W+2, g.field.H+2)
	dst.DrawBox(box)
}

// drawEntities renders every in-flight letter. The letter the active word
// needs next is highlighted so the player can pick it out of the noise; it
// flashes brighter while a fairness pulse is live.
func (g *Game) drawEntities(dst *core.Screen, snap engine.Snapshot) {
	for _, e := range snap.Entities {
		x := g.field.X + int(e.X)
		y := g.field.Y + int(e.Y)
		if y >= g.field.Bottom() {
			continue
		}

		color := core.ColorCyan
		if snap.NeededLetter != 0 && e.Glyph == snap.NeededLetter {
			color = core.ColorBrightYellow
			if snap.FairnessPulse {
				color = core.ColorBrightGreen
			}
		}
		dst.SetColored(x, y, e.Glyph, color)
	}
}

// drawCatcher renders the paddle on the bottom row of the playfield.
func (g *Game) drawCatcher(dst *core.Screen) {
	y := g.field.Bottom() - 1
	cx := g.field.X + int(g.catcherX)
	for dx := -CatcherWidth / 2; dx <= CatcherWidth/2; dx++ {
		x := cx + dx
		if x >= g.field.X && x < g.field.Right() {
			dst.SetColored(x, y, CatcherChar, core.ColorBrightWhite)
		}
	}
}

// drawSidebar renders the word list, credits and score panel.
func (g *Game) drawSidebar(dst *core.Screen, snap engine.Snapshot) {
	x := g.field.Right() + 2
	y := 1

	dst.DrawTextColored(x, y, "LETTERFALL", core.ColorBrightMagenta)
	y += 2

	for i, w := range snap.Words {
		mark := ' '
		color := core.ColorWhite
		switch {
		case w.Found:
			mark = FoundMark
			color = core.ColorGreen
		case i == snap.ActiveWord:
			mark = ActiveMark
			color = core.ColorBrightYellow
		}

		label := fmt.Sprintf("%c%d %s", mark, i+1, wordLine(w))
		dst.DrawTextColored(x, y, label, color)
		y++
	}

	y++
	dst.DrawText(x, y, fmt.Sprintf("Credits: %d", snap.Credits))
	y++
	dst.DrawText(x, y, fmt.Sprintf("Score:   %d", g.score))
	y++
	if snap.FairnessPulse {
		dst.DrawTextColored(x, y, "≡ pulse", core.ColorBrightGreen)
	}

	y += 2
	dst.DrawTextColored(x, y, "1-5 target word", core.ColorGray)
	dst.DrawTextColored(x, y+1, "←/→ move, space", core.ColorGray)
	dst.DrawTextColored(x, y+2, "catch, p pause", core.ColorGray)
}

// wordLine shows caught letters as-is and remaining letters as dots.
func wordLine(w engine.WordView) string {
	var sb strings.Builder
	sb.WriteString(w.Progress)
	for i := len(w.Progress); i < len(w.Target); i++ {
		sb.WriteRune('·')
	}
	return sb.String()
}

// drawCenteredMessage draws a message box in the center of the playfield.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := g.field.X + (g.field.W-boxW)/2
	boxY := g.field.Y + (g.field.H-boxH)/2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
