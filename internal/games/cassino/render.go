package cassino

import (
	"fmt"

	"github.com/lindabaloyi/official-casino-game-sub001/internal/core"
	"github.com/lindabaloyi/official-casino-game-sub001/internal/table"
)

// Table units per screen cell. Terminal cells are taller than wide, so the
// vertical scale is coarser.
const (
	unitsPerCellX = 10
	unitsPerCellY = 25
)

// Fixed screen offsets for the table area.
const (
	tableOffsetX = 2
	tableOffsetY = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderEntities(dst)
	g.renderHand(dst)

	if g.phase == phaseAim {
		g.renderCursor(dst)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst,
			fmt.Sprintf("Round over — You %d : %d CPU", g.playerPoints.Total(), g.cpuPoints.Total()),
			"Press R to play again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Cassino — Captured: %d  CPU: %d  Deck: %d",
		len(g.playerPile), len(g.cpuPile), len(g.deck))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.message != "" {
		dst.DrawTextColor(1, dst.Height()-6, g.message, core.ColorGray)
	}
}

// renderEntities draws every table entity at its locator-derived bounds,
// so what the player sees is exactly what contact resolution hit-tests.
func (g *Game) renderEntities(dst *core.Screen) {
	loc := g.resolver.Locator()
	for _, e := range g.entities {
		bounds, ok := loc.Bounds(e, g.entities)
		if !ok {
			continue
		}

		x := tableOffsetX + int(bounds.X/unitsPerCellX)
		y := tableOffsetY + int(bounds.Y/unitsPerCellY)
		w := core.Max(int(bounds.W/unitsPerCellX), 4)
		h := core.Max(int(bounds.H/unitsPerCellY), 3)

		color := entityColor(e)
		if e == g.highlight {
			color = core.ColorBrightYellow
		}
		dst.DrawBox(x, y, w, h, color)
		dst.DrawTextColor(x+1, y+1, entityLabel(e), color)
	}
}

func entityColor(e table.Entity) core.Color {
	switch e.Kind() {
	case table.KindBuild:
		return core.ColorCyan
	case table.KindTempStack:
		return core.ColorMagenta
	default:
		return core.ColorWhite
	}
}

// entityLabel returns the short text drawn inside an entity's box. Builds
// show their committed value; staged stacks show the resolver's display
// value, which is the common rank for a set and the total otherwise.
func entityLabel(e table.Entity) string {
	switch v := e.(type) {
	case *table.LooseCard:
		return v.Card.String()
	case *table.Build:
		marker := "B"
		if v.Owner == ownerCPU {
			marker = "b"
		}
		return fmt.Sprintf("%s%d", marker, v.Value)
	case *table.TempStack:
		return fmt.Sprintf("S%d?", table.StackValue(v.Cards))
	default:
		return "?"
	}
}

// renderHand draws the player's hand along the bottom of the screen.
func (g *Game) renderHand(dst *core.Screen) {
	y := dst.Height() - 4
	x := 2
	for i, c := range g.playerHand {
		color := core.ColorWhite
		if i == g.selected {
			color = core.ColorBrightGreen
		}
		dst.DrawBox(x, y, 5, 3, color)
		dst.DrawTextColor(x+1, y+1, c.String(), color)
		x += 6
	}

	help := handHelp(g.phase)
	dst.DrawTextColor(2, dst.Height()-1, help, core.ColorGray)
}

func handHelp(p phase) string {
	switch p {
	case phaseAim:
		return "arrows: aim  space: drop  esc: back"
	case phaseStack:
		return "enter: build  esc: cancel  space: add card"
	case phaseCPU:
		return "cpu is thinking..."
	default:
		return "←/→: pick a card  space: aim"
	}
}

// renderCursor draws the drop cursor.
func (g *Game) renderCursor(dst *core.Screen) {
	x := tableOffsetX + int(g.cursor.X/unitsPerCellX)
	y := tableOffsetY + int(g.cursor.Y/unitsPerCellY)
	dst.SetColor(x, y, '+', core.ColorBrightYellow)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
