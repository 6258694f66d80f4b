package blocks

import (
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Status   string
	Score    int
	Level    int
	Lines    int
	Board    [engine.Height][engine.Width]core.Color
	Piece    engine.Piece
	HasPiece bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.state.Progress()
	piece, ok := g.state.Active()
	return Snapshot{
		Tick:     g.tick,
		Status:   g.state.Status().String(),
		Score:    p.Score,
		Level:    p.Level,
		Lines:    p.Lines,
		Board:    g.state.Cells(),
		Piece:    piece,
		HasPiece: ok,
	}
}
