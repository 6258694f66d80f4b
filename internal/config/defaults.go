package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in configuration. It matches the
// embedded defaults/blocks.yaml.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		TickRate: 60,
		Display: DisplayConfig{
			Cell:     "█",
			Color:    true,
			ShowHelp: true,
		},
		Controls: ControlsConfig{
			Left:     []string{"left", "h", "a"},
			Right:    []string{"right", "l", "d"},
			Rotate:   []string{"up", "k", "w"},
			SoftDrop: []string{"down", "j", "s"},
			Drop:     []string{" "},
			Pause:    []string{"p"},
			Restart:  []string{"r"},
			Quit:     []string{"esc", "q"},
		},
		Storage: StorageConfig{
			DBPath: "~/.blocks/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.blocks/blocks.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for
// printing or writing out as a starting point.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
