package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

// KeyMap holds the in-game key bindings. Game keys come from the controls
// section of the config; ForceQuit, Screenshot and Help are fixed.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Rotate     key.Binding
	SoftDrop   key.Binding
	Drop       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	bind := func(keys []string, desc string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), desc),
		)
	}
	return KeyMap{
		Left:     bind(c.Left, "left"),
		Right:    bind(c.Right, "right"),
		Rotate:   bind(c.Rotate, "rotate"),
		SoftDrop: bind(c.SoftDrop, "soft drop"),
		Drop:     bind(c.Drop, "start/drop"),
		Pause:    bind(c.Pause, "pause"),
		Restart:  bind(c.Restart, "restart"),
		Quit:     bind(c.Quit, "quit"),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// helpKeys joins keys for the help line, spelling out the space bar.
func helpKeys(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		shown[i] = k
	}
	return strings.Join(shown, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Pause, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.SoftDrop},
		{k.Drop, k.Pause, k.Restart},
		{k.Screenshot, k.Quit, k.Help},
	}
}

// Action maps a key to a game action. The drop key depends on where the
// game is: it starts a new game from the title screen, restarts after game
// over and hard-drops otherwise.
func (k KeyMap) Action(msg tea.KeyMsg, st core.GameState) core.Action {
	switch {
	case key.Matches(msg, k.Drop):
		switch {
		case st.GameOver:
			return core.ActionRestart
		case !st.Started:
			return core.ActionStart
		default:
			return core.ActionHardDrop
		}
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}
