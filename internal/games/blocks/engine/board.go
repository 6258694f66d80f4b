package engine

import (
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Board dimensions in cells.
const (
	Width  = 10
	Height = 20
)

// Board is the playfield. A cell holds core.ColorDefault when empty and the
// color of the piece that settled there otherwise; any non-empty color counts
// as occupied. Board is a plain array value: assigning it copies the grid.
type Board struct {
	cells [Height][Width]core.Color
}

func inside(col, row int) bool {
	return col >= 0 && col < Width && row >= 0 && row < Height
}

// At returns the color stored at (col, row), or empty outside the grid.
func (b Board) At(col, row int) core.Color {
	if !inside(col, row) {
		return core.ColorDefault
	}
	return b.cells[row][col]
}

// Occupied reports whether (col, row) holds a settled block.
func (b Board) Occupied(col, row int) bool {
	return b.At(col, row) != core.ColorDefault
}

// Set stores a color at (col, row). Writes outside the grid are ignored.
func (b *Board) Set(col, row int, c core.Color) {
	if !inside(col, row) {
		return
	}
	b.cells[row][col] = c
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [Height][Width]core.Color{}
}

// Cells returns a copy of the grid, indexed [row][col].
func (b Board) Cells() [Height][Width]core.Color {
	return b.cells
}

// IsValidPlacement reports whether a shape rotation can sit at pos without
// overlapping settled blocks. Mask cells above the board (negative rows) are
// never checked and always count as free. Side and bottom limits are enforced
// by the movement code, not here.
func (b *Board) IsValidPlacement(id ShapeID, rotation int, pos Position) bool {
	for _, off := range MaskOf(id, rotation).Cells() {
		p := pos.Add(off)
		if p.Row < 0 {
			continue
		}
		if b.Occupied(p.Col, p.Row) {
			return false
		}
	}
	return true
}

// Place writes a piece into the grid. Cells above the board are dropped one
// by one; the rest of the piece is still recorded.
func (b *Board) Place(id ShapeID, rotation int, pos Position, c core.Color) {
	for _, off := range MaskOf(id, rotation).Cells() {
		p := pos.Add(off)
		if p.Row < 0 {
			continue
		}
		b.Set(p.Col, p.Row, c)
	}
}

// RowFilled reports whether every cell in row is occupied.
func (b Board) RowFilled(row int) bool {
	if row < 0 || row >= Height {
		return false
	}
	for _, c := range b.cells[row] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// ClearFilledRows removes every full row and compacts the rows above it
// downward. The scan runs bottom to top and re-tests a row index after a
// shift, so separated full rows are all caught in one pass.
// It returns the number of rows removed.
func (b *Board) ClearFilledRows() int {
	cleared := 0
	for row := Height - 1; row >= 0; {
		if !b.RowFilled(row) {
			row--
			continue
		}
		cleared++
		copy(b.cells[1:row+1], b.cells[0:row])
		b.cells[0] = [Width]core.Color{}
	}
	return cleared
}

// String dumps the grid as '#' and '.' rows, top row first.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for row := range Height {
		for col := range Width {
			if b.Occupied(col, row) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
