package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bounce-shield/internal/audio"
	"github.com/vovakirdan/bounce-shield/internal/config"
	"github.com/vovakirdan/bounce-shield/internal/core"
	"github.com/vovakirdan/bounce-shield/internal/platform/tui"
	"github.com/vovakirdan/bounce-shield/internal/registry"
	"github.com/vovakirdan/bounce-shield/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing the given mode (default "shield") in the terminal.

Controls:
  Left/Right, A/D  - Move paddle
  P/Esc            - Pause
  R                - Retry (after game over)
  B                - Leave (paused or game over)
  Q/Ctrl+C         - Quit

Modes:
  shield          - A heart for beating your previous best
  shield_classic  - Hearts and a wider paddle at fixed scores

Examples:
  bounce play
  bounce play shield_classic
  bounce play --difficulty easy
  bounce play --config ./my-shield.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// terminalRuntime sizes a runtime config to the current terminal.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openAudio opens the speaker, logging and going silent on failure.
func openAudio(cfg config.AudioConfig) *audio.Player {
	player, err := audio.NewPlayer(cfg)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return player
}

// openStore opens the leaderboard, logging and returning nil on failure.
func openStore() *storage.Store {
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("leaderboard unavailable", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	id, err := resolveMode(args)
	if err != nil {
		return err
	}

	cfg := loadConfig(id)
	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, terminalRuntime(), tui.GameOptions{
		Store:  store,
		Audio:  openAudio(cfg.Audio),
		Player: playerName(),
	})
	return err
}
