package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// Options carries the shell settings that come from the config file.
type Options struct {
	Controls      config.ControlsConfig
	Color         bool
	ShowHelp      bool
	ScreenshotDir string      // empty means ~/.blocks/screenshots
	Logger        *log.Logger // nil discards
}

// OptionsFromConfig builds shell options from a loaded config.
func OptionsFromConfig(cfg config.BlocksConfig, logger *log.Logger) Options {
	return Options{
		Controls: cfg.Controls,
		Color:    cfg.Display.Color,
		ShowHelp: cfg.Display.ShowHelp,
		Logger:   logger,
	}
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMap(opts.Controls),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight(cfg.ScreenH))
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Debug("game reset", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.boardHeight(m.config.ScreenH))
		m.resizeGame()
		return m, nil
	}

	m.inputFrame.Set(m.keys.Action(msg, m.gameState))
	return m, nil
}

// handleResize follows the terminal size. Games that can resize in place
// keep their state; others are reset unless the game is over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.boardHeight(msg.Height))
	m.resizeGame()
	return m, nil
}

func (m Model) resizeGame() {
	cfg := m.gameConfig()
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}
}

// handleTick runs one simulation step with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.logger.Debug("event", "game", m.game.ID(), "event", ev.String())
	}

	prev := m.gameState
	m.gameState = result.State

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case !m.gameState.GameOver && prev.GameOver:
		// Restarted: the next game over gets its own row.
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveScore() {
	st := m.gameState
	m.logger.Info("game over", "game", m.game.ID(), "score", st.Score, "level", st.Level, "lines", st.Lines)
	if m.store == nil {
		return
	}
	res := storage.Result{Score: st.Score, Level: st.Level, Lines: st.Lines}
	if _, err := m.store.SaveScore(m.game.ID(), res); err != nil {
		m.logger.Warn("score not saved", "err", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", st.Score)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = config.ExpandHome(filepath.Join("~", ".blocks", "screenshots"))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// gameConfig is the runtime config with the help line's rows taken off.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.boardHeight(cfg.ScreenH)
	return cfg
}

func (m Model) boardHeight(total int) int {
	if !m.opts.ShowHelp {
		return total
	}
	lines := 1
	if m.help.ShowAll {
		lines = len(m.keys.FullHelp()[0])
	}
	return max(total-lines, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	out := m.screen.String()
	if m.opts.Color {
		out = RenderScreen(m.screen)
	}
	if m.opts.ShowHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// GameState returns the state seen at the last tick.
func (m Model) GameState() core.GameState { return m.gameState }

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
