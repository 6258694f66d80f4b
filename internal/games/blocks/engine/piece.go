package engine

import "github.com/vovakirdan/tui-blocks/internal/core"

// SpawnColumn is where new pieces appear, measured from the left wall.
const SpawnColumn = 4

// Piece is the falling tetromino: which shape, which rotation, and where the
// top-left corner of its mask sits on the board.
type Piece struct {
	Shape    ShapeID
	Rotation int
	Pos      Position
}

// Spawn returns a fresh piece of the given shape at the spawn point.
func Spawn(id ShapeID) Piece {
	return Piece{Shape: id, Rotation: 0, Pos: Position{Col: SpawnColumn, Row: 0}}
}

// Mask returns the piece's current rotation mask.
func (p Piece) Mask() Mask {
	return MaskOf(p.Shape, p.Rotation)
}

// Color returns the color the piece paints when it locks.
func (p Piece) Color() core.Color {
	return p.Shape.Color()
}

// Cells returns the absolute board positions the piece covers, including any
// above the top row.
func (p Piece) Cells() []Position {
	offsets := p.Mask().Cells()
	out := make([]Position, len(offsets))
	for i, off := range offsets {
		out[i] = p.Pos.Add(off)
	}
	return out
}

// Bounds returns the largest column and row the top-left corner of a shape
// rotation may take while the whole mask stays inside the side walls and
// above the floor. Spawn, movement and rotation all share this limit.
func Bounds(id ShapeID, rotation int) (maxCol, maxRow int) {
	m := MaskOf(id, rotation)
	return Width - m.Width(), Height - m.Height()
}

func fits(b *Board, p Piece) bool {
	return b.IsValidPlacement(p.Shape, p.Rotation, p.Pos)
}

// MoveHorizontal shifts the piece dx columns. The target column is clamped
// to the walls first; if the clamped spot collides, or the piece would not
// move at all, the piece comes back unchanged with false.
func MoveHorizontal(b *Board, p Piece, dx int) (Piece, bool) {
	maxCol, _ := Bounds(p.Shape, p.Rotation)
	next := p
	next.Pos.Col = core.Clamp(p.Pos.Col+dx, 0, maxCol)
	if next.Pos == p.Pos || !fits(b, next) {
		return p, false
	}
	return next, true
}

// MoveDown drops the piece one row. It fails at the floor or on collision.
// Soft drop and gravity both use it.
func MoveDown(b *Board, p Piece) (Piece, bool) {
	_, maxRow := Bounds(p.Shape, p.Rotation)
	next := p
	next.Pos.Row++
	if next.Pos.Row > maxRow || !fits(b, next) {
		return p, false
	}
	return next, true
}

// Rotate advances the piece to its next rotation in place. There is no
// wall-kick: if the new mask would poke through a wall or the floor, or
// overlap settled blocks, the rotation is refused.
func Rotate(b *Board, p Piece) (Piece, bool) {
	next := p
	next.Rotation = (p.Rotation + 1) % RotationCount(p.Shape)
	if next.Rotation == p.Rotation {
		return p, false
	}
	maxCol, maxRow := Bounds(next.Shape, next.Rotation)
	if next.Pos.Col > maxCol || next.Pos.Row > maxRow || !fits(b, next) {
		return p, false
	}
	return next, true
}

// DropDistance returns how many rows the piece can fall before it rests.
func DropDistance(b *Board, p Piece) int {
	n := 0
	for {
		next, ok := MoveDown(b, p)
		if !ok {
			return n
		}
		p = next
		n++
	}
}
