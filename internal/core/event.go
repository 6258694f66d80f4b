package core

import "fmt"

// EventKind identifies something that happened during a simulation step.
// Platform collaborators (sound, logging, effects) react to events; they
// never feed back into game state.
type EventKind int

const (
	EventStarted EventKind = iota
	EventSpawned
	EventMoved
	EventRotated
	EventLocked
	EventLinesCleared // Value: rows removed
	EventLevelUp      // Value: new level
	EventTilt         // score overflowed and was reset
	EventPaused
	EventResumed
	EventGameOver
	EventRestarted
)

var eventNames = [...]string{
	EventStarted:      "started",
	EventSpawned:      "spawned",
	EventMoved:        "moved",
	EventRotated:      "rotated",
	EventLocked:       "locked",
	EventLinesCleared: "lines_cleared",
	EventLevelUp:      "level_up",
	EventTilt:         "tilt",
	EventPaused:       "paused",
	EventResumed:      "resumed",
	EventGameOver:     "game_over",
	EventRestarted:    "restarted",
}

// String returns the snake_case name of the event kind.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(k))
	}
	return eventNames[k]
}

// Event is a single occurrence reported by a game step.
type Event struct {
	Kind  EventKind
	Value int
}

// String formats the event for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventLinesCleared, EventLevelUp:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
	default:
		return e.Kind.String()
	}
}
