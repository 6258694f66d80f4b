package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestDropKeyDependsOnState(t *testing.T) {
	km := NewKeyMap(config.DefaultBlocksConfig().Controls)

	tests := []struct {
		name  string
		state core.GameState
		want  core.Action
	}{
		{"title screen", core.GameState{}, core.ActionStart},
		{"playing", core.GameState{Started: true}, core.ActionHardDrop},
		{"paused", core.GameState{Started: true, Paused: true}, core.ActionHardDrop},
		{"game over", core.GameState{Started: true, GameOver: true}, core.ActionRestart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(spaceKey, tt.state); got != tt.want {
				t.Errorf("Action(space) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultBindings(t *testing.T) {
	km := NewKeyMap(config.DefaultBlocksConfig().Controls)
	playing := core.GameState{Started: true}

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{runeKey('h'), core.ActionMoveLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.Action(tt.msg, playing); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestCustomBindings(t *testing.T) {
	controls := config.DefaultBlocksConfig().Controls
	controls.Rotate = []string{"x"}
	km := NewKeyMap(controls)
	playing := core.GameState{Started: true}

	if got := km.Action(runeKey('x'), playing); got != core.ActionRotate {
		t.Errorf("x = %v, want Rotate", got)
	}
	if got := km.Action(tea.KeyMsg{Type: tea.KeyUp}, playing); got != core.ActionNone {
		t.Errorf("up should be unbound, got %v", got)
	}
}

func TestHelpSpellsOutSpace(t *testing.T) {
	km := NewKeyMap(config.DefaultBlocksConfig().Controls)
	if h := km.Drop.Help().Key; h != "space" {
		t.Errorf("drop help key = %q, want space", h)
	}
	if h := km.Left.Help().Key; !strings.Contains(h, "left") {
		t.Errorf("left help key = %q", h)
	}
}
