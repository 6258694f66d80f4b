// Package config provides YAML-based configuration loading for the
// blocks terminal client.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// BlocksConfig is the full client configuration.
// Gameplay constants (board size, scoring, speed curve) are fixed and not
// part of it.
type BlocksConfig struct {
	TickRate int            `yaml:"tick_rate" env:"BLOCKS_TICK_RATE"`
	Display  DisplayConfig  `yaml:"display"`
	Controls ControlsConfig `yaml:"controls"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	Cell     string `yaml:"cell"`      // glyph painted for each occupied cell
	Color    bool   `yaml:"color" env:"BLOCKS_COLOR"` // false renders plain text
	ShowHelp bool   `yaml:"show_help"` // key help line under the board
}

// ControlsConfig lists the keys bound to each action.
type ControlsConfig struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Rotate   []string `yaml:"rotate"`
	SoftDrop []string `yaml:"soft_drop"`
	Drop     []string `yaml:"drop"` // start / hard drop / restart, by game state
	Pause    []string `yaml:"pause"`
	Restart  []string `yaml:"restart"`
	Quit     []string `yaml:"quit"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"BLOCKS_DB_PATH"`
}

// LogConfig sets up the file logger.
type LogConfig struct {
	Level string `yaml:"level" env:"BLOCKS_LOG_LEVEL"`
	File  string `yaml:"file" env:"BLOCKS_LOG_FILE"`
}

// CellRune returns the first rune of the configured cell glyph, or 0 when
// none is set.
func (d DisplayConfig) CellRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Cell)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// Bindings returns the control lists keyed by their YAML names, in a fixed
// order.
func (c ControlsConfig) Bindings() []Binding {
	return []Binding{
		{"left", c.Left},
		{"right", c.Right},
		{"rotate", c.Rotate},
		{"soft_drop", c.SoftDrop},
		{"drop", c.Drop},
		{"pause", c.Pause},
		{"restart", c.Restart},
		{"quit", c.Quit},
	}
}

// Binding is one named control list.
type Binding struct {
	Name string
	Keys []string
}

// Validate reports the first problem found in the configuration.
func (c BlocksConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}

	owner := make(map[string]string)
	for _, b := range c.Controls.Bindings() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("config: controls.%s has no keys", b.Name)
		}
		for _, k := range b.Keys {
			if strings.TrimSpace(k) == "" && k != " " {
				return fmt.Errorf("config: controls.%s contains an empty key", b.Name)
			}
			if prev, dup := owner[k]; dup {
				return fmt.Errorf("config: key %q bound to both controls.%s and controls.%s", k, prev, b.Name)
			}
			owner[k] = b.Name
		}
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log.level: %w", err)
		}
	}
	return nil
}
