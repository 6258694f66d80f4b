package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q/Esc        - Quit

Examples:
  blocks menu
  blocks menu --fps 30
  blocks menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	for {
		cfg := runtimeConfig()
		choice, err := tui.RunMenu(cfg.ScreenW, cfg.ScreenH, highScore(store))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			return
		}
		app.logger.Debug("menu", "choice", choice.String())

		switch choice {
		case tui.ChoicePlay:
			if err := playOnce(store); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, blocks.ID, cfg.ScreenW, cfg.ScreenH, app.logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}

func highScore(store *storage.Store) int {
	if store == nil {
		return 0
	}
	high, err := store.HighScore(blocks.ID)
	if err != nil {
		app.logger.Warn("high score unavailable", "err", err)
		return 0
	}
	return high
}
