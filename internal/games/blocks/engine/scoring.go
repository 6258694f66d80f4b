package engine

import "time"

// Scoring and progression constants (NES-style line scoring).
const (
	MaxScore            = 9_999_999
	LinesPerLevel       = 10
	SpeedCapLevel       = 20
	InitialDropInterval = 500 * time.Millisecond
	DropIntervalStep    = 20 * time.Millisecond
)

// Progress is the score-keeping half of the game state.
type Progress struct {
	Score             int
	Level             int
	Lines             int // total lines cleared this game
	LinesSinceLevelUp int
	DropInterval      time.Duration
}

// NewProgress returns the progress of a fresh game.
func NewProgress() Progress {
	return Progress{DropInterval: InitialDropInterval}
}

// ScoreForClear returns the points for clearing lines rows in one lock at
// the given level. Four or more rows score as a four-row clear.
func ScoreForClear(level, lines int) int {
	var base int
	switch {
	case lines <= 0:
		return 0
	case lines == 1:
		base = 40
	case lines == 2:
		base = 100
	case lines == 3:
		base = 300
	default:
		base = 1200
	}
	return (level + 1) * base
}

// ApplyClear adds the score and line counts for one lock. A score that passes
// MaxScore "tilts" back to zero; the second result reports that.
func (p Progress) ApplyClear(lines int) (Progress, bool) {
	p.Score += ScoreForClear(p.Level, lines)
	if lines > 0 {
		p.Lines += lines
		p.LinesSinceLevelUp += lines
	}
	if p.Score > MaxScore {
		p.Score = 0
		return p, true
	}
	return p, false
}

// LevelUp consumes whole groups of LinesPerLevel lines, raising the level for
// each. Gravity speeds up by DropIntervalStep per level until SpeedCapLevel;
// levels past the cap keep counting but the interval stays put.
// It returns the updated progress and the number of levels gained.
func (p Progress) LevelUp() (Progress, int) {
	gained := 0
	for p.LinesSinceLevelUp >= LinesPerLevel {
		p.LinesSinceLevelUp -= LinesPerLevel
		if p.Level < SpeedCapLevel {
			p.DropInterval -= DropIntervalStep
		}
		p.Level++
		gained++
	}
	return p, gained
}
