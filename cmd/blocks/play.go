package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game straight away.

Default controls (change them in the config file):
  Left/Right, h/l, a/d - Move
  Up, k, w             - Rotate
  Down, j, s           - Soft drop
  Space                - Start / hard drop / restart after game over
  P                    - Pause
  Ctrl+S               - Save a screenshot
  Esc/Q, Ctrl+C        - Quit

Examples:
  blocks play
  blocks play --seed 7
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	store := openStore()
	err := playOnce(store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		app.close()
		os.Exit(1)
	}
}

// playOnce runs one game session until the player quits it.
func playOnce(store *storage.Store) error {
	game, err := registry.Create(blocks.ID)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	app.logger.Info("session start", "game", game.ID(), "width", cfg.ScreenW, "height", cfg.ScreenH, "seed", cfg.Seed)
	err = tui.Run(game, store, cfg, tui.OptionsFromConfig(app.cfg, app.logger))
	app.logger.Info("session end", "game", game.ID())
	return err
}
