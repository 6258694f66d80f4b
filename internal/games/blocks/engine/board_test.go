package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// fillRow occupies every cell of row except the listed columns.
func fillRow(b *Board, row int, except ...int) {
	skip := map[int]bool{}
	for _, c := range except {
		skip[c] = true
	}
	for col := range Width {
		if !skip[col] {
			b.Set(col, row, core.ColorGray)
		}
	}
}

func TestBoardAccessorsAreBoundsChecked(t *testing.T) {
	var b Board
	b.Set(-1, 0, core.ColorRed)
	b.Set(0, Height, core.ColorRed)
	b.Set(Width, 5, core.ColorRed)

	assert.Equal(t, Board{}, b, "out-of-range writes must be ignored")
	assert.False(t, b.Occupied(-1, -1))
	assert.Equal(t, core.ColorDefault, b.At(Width, Height))

	b.Set(3, 7, core.ColorCyan)
	assert.True(t, b.Occupied(3, 7))
	assert.Equal(t, core.ColorCyan, b.Cells()[7][3])
}

func TestReadAccessorsWorkOnBoardCopies(t *testing.T) {
	var b Board
	fillRow(&b, Height-1)
	b.Set(2, 5, core.ColorMagenta)

	snapshot := func() Board { return b }

	assert.True(t, snapshot().Occupied(2, 5))
	assert.Equal(t, core.ColorMagenta, snapshot().At(2, 5))
	assert.True(t, snapshot().RowFilled(Height-1))
	assert.False(t, snapshot().RowFilled(5))
	assert.Equal(t, b.Cells(), snapshot().Cells())
	assert.Equal(t, b.String(), snapshot().String())
}

func TestIsValidPlacementMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 40; trial++ {
		var b Board
		for row := range Height {
			for col := range Width {
				if rng.Intn(4) == 0 {
					b.Set(col, row, core.ColorRed)
				}
			}
		}

		for _, id := range AllShapes() {
			for rot := range RotationCount(id) {
				maxCol, maxRow := Bounds(id, rot)
				for row := -3; row <= maxRow; row++ {
					for col := 0; col <= maxCol; col++ {
						pos := Position{Col: col, Row: row}

						collides := false
						m := MaskOf(id, rot)
						for my := range m.Height() {
							for mx := range m.Width() {
								if m.Filled(mx, my) && row+my >= 0 && b.cells[row+my][col+mx] != core.ColorDefault {
									collides = true
								}
							}
						}

						require.Equal(t, !collides, b.IsValidPlacement(id, rot, pos),
							"shape %s rot %d at %+v on\n%s", id, rot, pos, b.String())
					}
				}
			}
		}
	}
}

func TestPlaceThenPlacementIsInvalid(t *testing.T) {
	for _, id := range AllShapes() {
		for rot := range RotationCount(id) {
			var b Board
			pos := Position{Col: 3, Row: 10}
			require.True(t, b.IsValidPlacement(id, rot, pos))

			b.Place(id, rot, pos, id.Color())
			assert.False(t, b.IsValidPlacement(id, rot, pos), "shape %s rot %d", id, rot)

			for _, c := range (Piece{Shape: id, Rotation: rot, Pos: pos}).Cells() {
				assert.Equal(t, id.Color(), b.At(c.Col, c.Row))
			}
		}
	}
}

// Rows above the board are never collision-checked. This is long-standing
// behavior: a piece poking out of the top only collides through the part
// that is on the board.
func TestPlacementIgnoresCellsAboveBoard(t *testing.T) {
	var b Board
	b.Set(0, 0, core.ColorRed)

	vertical := 1 // ShapeI standing up, 1x4
	assert.True(t, b.IsValidPlacement(ShapeI, vertical, Position{Col: 0, Row: -4}),
		"entirely above the board is always valid")
	assert.False(t, b.IsValidPlacement(ShapeI, vertical, Position{Col: 0, Row: -3}),
		"the bottom cell reaches row 0 and collides")

	// Placing a piece above the board records nothing for those rows, so a
	// second piece in the same spot is still accepted.
	b.Place(ShapeO, 0, Position{Col: 5, Row: -2}, ShapeO.Color())
	assert.True(t, b.IsValidPlacement(ShapeO, 0, Position{Col: 5, Row: -2}))
}

func TestPlaceSkipsRowsAboveBoardPerCell(t *testing.T) {
	var b Board
	b.Place(ShapeI, 1, Position{Col: 2, Row: -2}, ShapeI.Color())

	assert.True(t, b.Occupied(2, 0))
	assert.True(t, b.Occupied(2, 1))
	assert.False(t, b.Occupied(2, 2))
}

func TestClearFilledRows(t *testing.T) {
	type marker struct{ col, row int }

	tests := []struct {
		name    string
		full    []int
		markers []marker // single cells placed before clearing
		want    int
		after   []marker // where those markers end up
	}{
		{
			name:    "no full rows",
			full:    nil,
			markers: []marker{{0, 19}},
			want:    0,
			after:   []marker{{0, 19}},
		},
		{
			name:    "single bottom row",
			full:    []int{19},
			markers: []marker{{4, 18}, {9, 0}},
			want:    1,
			after:   []marker{{4, 19}, {9, 1}},
		},
		{
			name:    "two separated rows",
			full:    []int{19, 17},
			markers: []marker{{0, 18}, {1, 16}},
			want:    2,
			after:   []marker{{0, 19}, {1, 18}},
		},
		{
			name:    "three rows with a gap",
			full:    []int{19, 18, 16},
			markers: []marker{{2, 17}, {5, 15}},
			want:    3,
			after:   []marker{{2, 19}, {5, 18}},
		},
		{
			name:    "four stacked rows",
			full:    []int{16, 17, 18, 19},
			markers: []marker{{3, 15}},
			want:    4,
			after:   []marker{{3, 19}},
		},
		{
			name:  "top row full",
			full:  []int{0},
			want:  1,
			after: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b Board
			for _, row := range tc.full {
				fillRow(&b, row)
			}
			for _, m := range tc.markers {
				b.Set(m.col, m.row, core.ColorYellow)
			}

			require.Equal(t, tc.want, b.ClearFilledRows())

			var want Board
			for _, m := range tc.after {
				want.Set(m.col, m.row, core.ColorYellow)
			}
			assert.Equal(t, want.String(), b.String())
			for row := range Height {
				assert.False(t, b.RowFilled(row), "row %d still full", row)
			}
		})
	}
}

func TestClearFilledRowsKeepsColors(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	b.Set(0, 18, core.ColorMagenta)
	b.Set(1, 18, core.ColorBlue)

	require.Equal(t, 1, b.ClearFilledRows())
	assert.Equal(t, core.ColorMagenta, b.At(0, 19))
	assert.Equal(t, core.ColorBlue, b.At(1, 19))
}

func TestRowFilledNeedsEveryCell(t *testing.T) {
	var b Board
	fillRow(&b, 10, 9)
	assert.False(t, b.RowFilled(10))
	b.Set(9, 10, core.ColorRed)
	assert.True(t, b.RowFilled(10))
	assert.False(t, b.RowFilled(-1))
	assert.False(t, b.RowFilled(Height))
}

func TestBoardReset(t *testing.T) {
	var b Board
	fillRow(&b, 5)
	b.Reset()
	assert.Equal(t, Board{}, b)
}
