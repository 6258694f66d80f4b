package engine

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Phase is the state machine position. Spawning, Locking and Clearing are
// transient: every call runs them to completion, so between calls a State
// is always NotStarted, Falling or GameOver.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseSpawning
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Status is the coarse game status shown to players.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Randomizer picks spawn shapes. *rand.Rand from math/rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.IntN(n) }

// State is the whole game. It is a value: every engine call takes one and
// returns the next, and nothing else holds game data. Copies share only the
// Randomizer.
type State struct {
	phase    Phase
	paused   bool
	board    Board
	piece    Piece
	hasPiece bool
	progress Progress
	gravity  time.Duration // time banked toward the next gravity step
	rng      Randomizer
	quit     bool
	events   []core.Event
}

// Initialize returns a new game waiting for ActionStart. A nil rng falls back
// to the math/rand/v2 global source.
func Initialize(rng Randomizer) State {
	if rng == nil {
		rng = globalRand{}
	}
	return State{
		phase:    PhaseNotStarted,
		progress: NewProgress(),
		rng:      rng,
	}
}

// HandleAction applies one player action. Actions that make no sense in the
// current state are ignored and the state comes back unchanged.
func HandleAction(s State, a core.Action) State {
	s.events = nil

	switch a {
	case core.ActionQuit:
		s.quit = true
		return s

	case core.ActionStart:
		if s.phase == PhaseNotStarted {
			s.emit(core.EventStarted, 0)
			s.phase = PhaseSpawning
			s.settle()
		}
		return s

	case core.ActionRestart:
		if s.phase == PhaseNotStarted || s.phase == PhaseGameOver {
			s = Initialize(s.rng)
			s.emit(core.EventRestarted, 0)
		}
		return s

	case core.ActionPause:
		if s.phase == PhaseFalling {
			s.paused = !s.paused
			if s.paused {
				s.emit(core.EventPaused, 0)
			} else {
				s.emit(core.EventResumed, 0)
			}
		}
		return s
	}

	if s.phase != PhaseFalling || s.paused {
		return s
	}

	var (
		next  Piece
		moved bool
		kind  = core.EventMoved
	)
	switch a {
	case core.ActionMoveLeft:
		next, moved = MoveHorizontal(&s.board, s.piece, -1)
	case core.ActionMoveRight:
		next, moved = MoveHorizontal(&s.board, s.piece, 1)
	case core.ActionSoftDrop:
		next, moved = MoveDown(&s.board, s.piece)
	case core.ActionRotate:
		next, moved = Rotate(&s.board, s.piece)
		kind = core.EventRotated
	case core.ActionHardDrop:
		s.piece.Pos.Row += DropDistance(&s.board, s.piece)
		s.phase = PhaseLocking
		s.settle()
		return s
	default:
		return s
	}

	if moved {
		s.piece = next
		s.emit(kind, 0)
	}
	return s
}

// AdvanceTime feeds elapsed wall time to gravity. Each full drop interval
// moves the piece down one row, locking it when it cannot fall. Time is only
// banked while a piece is falling and the game is not paused.
func AdvanceTime(s State, elapsed time.Duration) State {
	s.events = nil
	if s.phase != PhaseFalling || s.paused || elapsed <= 0 {
		return s
	}

	s.gravity += elapsed
	for s.phase == PhaseFalling && s.gravity >= s.progress.DropInterval {
		s.gravity -= s.progress.DropInterval
		s.fall()
		s.settle()
	}
	return s
}

// fall is one gravity step.
func (s *State) fall() {
	next, ok := MoveDown(&s.board, s.piece)
	switch {
	case ok:
		s.piece = next
	case s.piece.Pos.Row < 0:
		s.gameOver()
	default:
		s.phase = PhaseLocking
	}
}

// settle runs transient phases until the machine reaches a resting phase.
func (s *State) settle() {
	for {
		switch s.phase {
		case PhaseSpawning:
			s.spawn()
		case PhaseLocking:
			s.lock()
		case PhaseClearing:
			s.clearRows()
		default:
			return
		}
	}
}

func (s *State) spawn() {
	s.piece = Spawn(ShapeID(s.rng.Intn(ShapeCount)))
	s.hasPiece = true
	s.gravity = 0
	if !fits(&s.board, s.piece) {
		s.gameOver()
		return
	}
	s.phase = PhaseFalling
	s.emit(core.EventSpawned, int(s.piece.Shape))
}

func (s *State) lock() {
	s.board.Place(s.piece.Shape, s.piece.Rotation, s.piece.Pos, s.piece.Color())
	s.hasPiece = false
	s.emit(core.EventLocked, int(s.piece.Shape))
	s.phase = PhaseClearing
}

func (s *State) clearRows() {
	n := s.board.ClearFilledRows()
	if n > 0 {
		s.emit(core.EventLinesCleared, n)
	}

	var tilted bool
	s.progress, tilted = s.progress.ApplyClear(n)
	if tilted {
		s.emit(core.EventTilt, 0)
	}

	var gained int
	s.progress, gained = s.progress.LevelUp()
	if gained > 0 {
		s.emit(core.EventLevelUp, s.progress.Level)
	}

	s.phase = PhaseSpawning
}

func (s *State) gameOver() {
	s.phase = PhaseGameOver
	s.paused = false
	s.emit(core.EventGameOver, s.progress.Score)
}

func (s *State) emit(kind core.EventKind, value int) {
	s.events = append(s.events, core.Event{Kind: kind, Value: value})
}

// Phase returns the state machine phase.
func (s State) Phase() Phase { return s.phase }

// Status folds the phase and pause flag into the player-facing status.
func (s State) Status() Status {
	switch {
	case s.phase == PhaseGameOver:
		return StatusGameOver
	case s.phase == PhaseNotStarted:
		return StatusNotStarted
	case s.paused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

// Board returns a copy of the playfield.
func (s State) Board() Board { return s.board }

// Cells returns a snapshot of settled cells, indexed [row][col].
func (s State) Cells() [Height][Width]core.Color { return s.board.Cells() }

// Active returns the falling piece. The bool is false when there is none:
// before the first spawn and after a lock. A piece that failed to spawn is
// still reported so it can be drawn on the game-over screen.
func (s State) Active() (Piece, bool) { return s.piece, s.hasPiece }

// Progress returns score, level, lines and drop interval.
func (s State) Progress() Progress { return s.progress }

// Events returns what happened during the call that produced this state.
func (s State) Events() []core.Event { return s.events }

// QuitRequested reports whether ActionQuit was received.
func (s State) QuitRequested() bool { return s.quit }
