// Package blocks adapts the falling-block engine to the arcade platform:
// fixed-tick stepping, screen rendering and registry wiring.
package blocks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// ID is the registry and score-table key for this game.
const ID = "blocks"

// Game implements registry.Game on top of engine.State.
type Game struct {
	state engine.State
	tick  uint64
	frame time.Duration // simulated time per Step

	screenW  int
	screenH  int
	tooSmall bool
}

var cellGlyph = '█'

// SetCellGlyph changes the rune used to paint settled and falling cells.
// Zero restores the default block.
func SetCellGlyph(r rune) {
	if r == 0 {
		r = '█'
	}
	cellGlyph = r
}

// New creates a game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Blocks" }

// Reset starts a fresh game on the title screen. The seed drives the
// shape sequence, so equal seeds and inputs replay the same game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(rate)
	g.state = engine.Initialize(rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records new terminal dimensions without touching game state.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < minWidth || height < minHeight
}

// Step applies the frame's actions in order, then advances gravity by one
// tick. The result carries every event raised along the way.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var events []core.Event
	for _, a := range in.Actions {
		// Everything but quit waits until the board fits on screen.
		if g.tooSmall && a != core.ActionQuit {
			continue
		}
		g.state = engine.HandleAction(g.state, a)
		events = append(events, g.state.Events()...)
	}

	if !g.tooSmall {
		g.state = engine.AdvanceTime(g.state, g.frame)
		events = append(events, g.state.Events()...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.state.Progress()
	status := g.state.Status()
	return core.GameState{
		Score:    p.Score,
		Level:    p.Level,
		Lines:    p.Lines,
		Started:  status != engine.StatusNotStarted,
		GameOver: status == engine.StatusGameOver,
		Paused:   status == engine.StatusPaused || g.tooSmall,
		Quit:     g.state.QuitRequested(),
	}
}

// Engine exposes the underlying engine state for read-only inspection.
func (g *Game) Engine() engine.State { return g.state }
