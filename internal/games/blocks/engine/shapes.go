// Package engine is the deterministic core of the falling-block game: the
// shape catalog, the board, piece movement, scoring and the state machine
// that ties them together. It has no clock, terminal or storage
// dependencies; callers feed it actions and elapsed time.
package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// ShapeID identifies one of the seven tetrominoes.
type ShapeID int

// Shape ids. The order is part of the game: spawns pick uniformly from 0..6.
const (
	ShapeL ShapeID = iota
	ShapeJ
	ShapeT
	ShapeS
	ShapeZ
	ShapeI
	ShapeO
)

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = 7

// Position is a grid coordinate. For a piece it is the top-left corner of
// its rotation mask; Row may be negative while the piece is above the board.
type Position struct {
	Col int
	Row int
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{Col: p.Col + d.Col, Row: p.Row + d.Row}
}

// Mask is one rotation of a shape: a Width x Height box with some cells filled.
// Masks are built once and shared; the zero Mask is empty.
type Mask struct {
	width  int
	height int
	filled []bool // row-major
	cells  []Position
}

// Width returns the number of mask columns.
func (m Mask) Width() int { return m.width }

// Height returns the number of mask rows.
func (m Mask) Height() int { return m.height }

// Filled reports whether the mask cell at (col, row) is occupied.
func (m Mask) Filled(col, row int) bool {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return false
	}
	return m.filled[row*m.width+col]
}

// Cells returns the offsets of occupied cells in row-major order.
// The slice is shared and must not be modified.
func (m Mask) Cells() []Position {
	return m.cells
}

// String renders the mask with '#' for filled and '.' for empty cells.
func (m Mask) String() string {
	buf := make([]byte, 0, (m.width+1)*m.height)
	for row := range m.height {
		if row > 0 {
			buf = append(buf, '/')
		}
		for col := range m.width {
			if m.Filled(col, row) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}

// newMask parses rows like "##." into a mask. All rows must share a length.
func newMask(rows ...string) Mask {
	m := Mask{width: len(rows[0]), height: len(rows)}
	m.filled = make([]bool, m.width*m.height)
	for row, line := range rows {
		if len(line) != m.width {
			panic(fmt.Sprintf("engine: ragged mask row %q", line))
		}
		for col := range line {
			if line[col] == '#' {
				m.filled[row*m.width+col] = true
				m.cells = append(m.cells, Position{Col: col, Row: row})
			}
		}
	}
	return m
}

type shapeDef struct {
	name      string
	color     core.Color
	rotations []Mask
}

var catalog = [ShapeCount]shapeDef{
	ShapeL: {
		name:  "L",
		color: core.ColorMagenta,
		rotations: []Mask{
			newMask("###", "#.."),
			newMask("##", ".#", ".#"),
			newMask("..#", "###"),
			newMask("#.", "#.", "##"),
		},
	},
	ShapeJ: {
		name:  "J",
		color: core.ColorWhite,
		rotations: []Mask{
			newMask("###", "..#"),
			newMask(".#", ".#", "##"),
			newMask("#..", "###"),
			newMask("##", "#.", "#."),
		},
	},
	ShapeT: {
		name:  "T",
		color: core.ColorYellow,
		rotations: []Mask{
			newMask("###", ".#."),
			newMask(".#", "##", ".#"),
			newMask(".#.", "###"),
			newMask("#.", "##", "#."),
		},
	},
	ShapeS: {
		name:  "S",
		color: core.ColorGreen,
		rotations: []Mask{
			newMask(".##", "##."),
			newMask("#.", "##", ".#"),
		},
	},
	ShapeZ: {
		name:  "Z",
		color: core.ColorCyan,
		rotations: []Mask{
			newMask("##.", ".##"),
			newMask(".#", "##", "#."),
		},
	},
	ShapeI: {
		name:  "I",
		color: core.ColorRed,
		rotations: []Mask{
			newMask("####"),
			newMask("#", "#", "#", "#"),
		},
	},
	ShapeO: {
		name:  "O",
		color: core.ColorBlue,
		rotations: []Mask{
			newMask("##", "##"),
		},
	},
}

// AllShapes returns every shape id in catalog order.
func AllShapes() []ShapeID {
	ids := make([]ShapeID, ShapeCount)
	for i := range ids {
		ids[i] = ShapeID(i)
	}
	return ids
}

// Valid reports whether id names a catalog entry.
func (id ShapeID) Valid() bool {
	return id >= 0 && id < ShapeCount
}

// String returns the single-letter shape name.
func (id ShapeID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("shape(%d)", int(id))
	}
	return catalog[id].name
}

// Color returns the shape's canonical color.
func (id ShapeID) Color() core.Color {
	return catalog[id].color
}

// RotationCount returns how many rotation masks the shape has (1, 2 or 4).
func RotationCount(id ShapeID) int {
	return len(catalog[id].rotations)
}

// MaskOf returns the mask for a shape rotation. Indices outside the catalog
// panic; callers must stay within RotationCount.
func MaskOf(id ShapeID, rotation int) Mask {
	return catalog[id].rotations[rotation]
}
