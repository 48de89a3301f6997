package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-shield/internal/platform/tui"
	"github.com/vovakirdan/bounce-shield/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick modes from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the leaderboard.
Leaving a paused or finished game with B returns to the menu. Results are
kept until the program exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play mode
  Tab          - Leaderboard
  Q            - Quit

Examples:
  bounce menu
  bounce menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalRuntime()
	player := playerName()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create mode", "mode", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		shieldCfg := loadConfig(menuResult.GameID)
		backToMenu, err := tui.Run(game, cfg, tui.GameOptions{
			Store:  store,
			Audio:  openAudio(shieldCfg.Audio),
			Player: player,
		})
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
