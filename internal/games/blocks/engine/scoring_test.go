package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreForClear(t *testing.T) {
	tests := []struct {
		level, lines, want int
	}{
		{0, 0, 0},
		{0, 1, 40},
		{0, 2, 100},
		{0, 3, 300},
		{0, 4, 1200},
		{2, 1, 120},
		{5, 4, 7200},
		{0, 5, 1200},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ScoreForClear(tc.level, tc.lines), "level %d lines %d", tc.level, tc.lines)
	}
}

func TestApplyClearAccumulates(t *testing.T) {
	p := NewProgress()
	p.Level = 2

	p, tilted := p.ApplyClear(2)
	assert.False(t, tilted)
	assert.Equal(t, 300, p.Score)
	assert.Equal(t, 2, p.Lines)
	assert.Equal(t, 2, p.LinesSinceLevelUp)

	p, _ = p.ApplyClear(0)
	assert.Equal(t, 300, p.Score)
	assert.Equal(t, 2, p.Lines)
}

func TestApplyClearTilts(t *testing.T) {
	p := NewProgress()
	p.Score = MaxScore - 40
	p, tilted := p.ApplyClear(1)
	assert.False(t, tilted)
	assert.Equal(t, MaxScore, p.Score, "reaching the maximum exactly is fine")

	p, tilted = p.ApplyClear(1)
	assert.True(t, tilted)
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, 2, p.Lines, "lines still count on a tilt")
}

func TestLevelUp(t *testing.T) {
	p := NewProgress()
	p.LinesSinceLevelUp = 9
	p, gained := p.LevelUp()
	assert.Equal(t, 0, gained)
	assert.Equal(t, InitialDropInterval, p.DropInterval)

	p.LinesSinceLevelUp = 12
	p, gained = p.LevelUp()
	assert.Equal(t, 1, gained)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 2, p.LinesSinceLevelUp)
	assert.Equal(t, 480*time.Millisecond, p.DropInterval)
}

func TestLevelUpConsumesEveryGroup(t *testing.T) {
	p := NewProgress()
	p.LinesSinceLevelUp = 23
	p, gained := p.LevelUp()
	assert.Equal(t, 2, gained)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 3, p.LinesSinceLevelUp)
	assert.Equal(t, 460*time.Millisecond, p.DropInterval)
}

func TestLevelUpSpeedCap(t *testing.T) {
	p := NewProgress()
	for range SpeedCapLevel {
		p.LinesSinceLevelUp += LinesPerLevel
		p, _ = p.LevelUp()
	}
	assert.Equal(t, SpeedCapLevel, p.Level)
	floor := InitialDropInterval - SpeedCapLevel*DropIntervalStep
	assert.Equal(t, floor, p.DropInterval)
	assert.Equal(t, 100*time.Millisecond, floor)

	p.LinesSinceLevelUp = LinesPerLevel
	p, gained := p.LevelUp()
	assert.Equal(t, 1, gained)
	assert.Equal(t, SpeedCapLevel+1, p.Level, "level keeps counting")
	assert.Equal(t, floor, p.DropInterval, "speed does not")
}
