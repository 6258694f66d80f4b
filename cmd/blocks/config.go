package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration file. Save it as
~/.blocks/configs/blocks.yaml or ./configs/blocks.yaml and edit it to
change controls, display or storage settings.

Example:
  blocks config > ~/.blocks/configs/blocks.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
