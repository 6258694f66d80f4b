package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// appState is what every command shares after flag and config handling.
type appState struct {
	cfg     config.BlocksConfig
	logger  *log.Logger
	logFile *os.File
}

var app appState

// setup loads the config, applies flag overrides and opens the log file.
func setup() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagFPS != 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if cfg.Log.File != "" {
		path := config.ExpandHome(cfg.Log.File)
		if f, err := openLogFile(path); err == nil {
			w = f
			app.logFile = f
		}
	}

	app.cfg = cfg
	app.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocks",
		Level:           level,
	})
	app.logger.Debug("config loaded", "tick_rate", cfg.TickRate, "db", cfg.Storage.DBPath)

	blocks.SetCellGlyph(cfg.Display.CellRune())
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func (a *appState) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// openStore opens the score database. Failure is not fatal for playing:
// the game runs without high scores.
func openStore() *storage.Store {
	store, err := storage.Open(app.cfg.Storage.DBPath)
	if err != nil {
		app.logger.Warn("scores disabled", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: app.cfg.TickRate,
		Seed:     flagSeed,
	}
}
