package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

const (
	cellWidth = 2 // terminal columns per board cell, so cells look square
	wellW     = engine.Width*cellWidth + 2
	wellH     = engine.Height + 2
	hudGap    = 3
	hudW      = 16

	minWidth  = wellW + hudGap + hudW
	minHeight = wellH
)

// MinSize returns the smallest terminal the game can draw into.
func MinSize() (width, height int) { return minWidth, minHeight }

// Render draws the well, the settled stack, the falling piece and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	originX := (g.screenW - minWidth) / 2
	originY := (g.screenH - minHeight) / 2

	dst.DrawBox(core.NewRect(originX, originY, wellW, wellH), core.ColorWhite)
	g.renderBoard(dst, originX+1, originY+1)
	g.renderPiece(dst, originX+1, originY+1)
	g.renderHUD(dst, originX+wellW+hudGap, originY+1)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight))
}

func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	cells := g.state.Cells()
	for row := range engine.Height {
		for col := range engine.Width {
			x := x0 + col*cellWidth
			y := y0 + row
			if c := cells[row][col]; c != core.ColorDefault {
				drawCell(dst, x, y, c)
				continue
			}
			// Grid dot marks the empty cell.
			dst.SetCell(x, y, '·', core.ColorBlue)
		}
	}
}

func (g *Game) renderPiece(dst *core.Screen, x0, y0 int) {
	p, ok := g.state.Active()
	if !ok {
		return
	}
	for _, c := range p.Cells() {
		if c.Row < 0 {
			continue
		}
		drawCell(dst, x0+c.Col*cellWidth, y0+c.Row, p.Color())
	}
}

func drawCell(dst *core.Screen, x, y int, c core.Color) {
	for i := range cellWidth {
		dst.SetCell(x+i, y, cellGlyph, c)
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	p := g.state.Progress()

	dst.DrawTextColor(x, y, "BLOCKS", core.ColorCyan)
	dst.DrawText(x, y+2, fmt.Sprintf("level: %d", p.Level))
	dst.DrawText(x, y+3, fmt.Sprintf("lines: %d", p.Lines))
	dst.DrawText(x, y+4, fmt.Sprintf("score: %d", p.Score))

	switch g.state.Status() {
	case engine.StatusPaused:
		dst.DrawTextColor(x, y+6, "PAUSE", core.ColorYellow)
	case engine.StatusNotStarted:
		dst.DrawTextColor(x, y+6, "PRESS SPACE...", core.ColorGreen)
	case engine.StatusGameOver:
		dst.DrawTextColor(x, y+6, "GAME OVER", core.ColorRed)
	}
}
