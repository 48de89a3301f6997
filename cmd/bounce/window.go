package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-shield/internal/platform/window"
	"github.com/vovakirdan/bounce-shield/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window and play the given mode (default "shield").

Controls:
  Left/Right, A/D  - Move paddle
  P/Esc            - Pause
  R                - Retry (after game over)
  F                - Toggle fullscreen
  B                - Close (paused or game over)
  Q                - Quit

Examples:
  bounce window
  bounce window shield_classic --fps 120`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	id, err := resolveMode(args)
	if err != nil {
		return err
	}

	title := id
	if g, err := registry.Create(id); err == nil {
		title = g.Title()
	}

	cfg := loadConfig(id)
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return window.Run(window.Options{
		Config:   cfg,
		ModeID:   id,
		Title:    title,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Player:   playerName(),
		Store:    store,
		Audio:    openAudio(cfg.Audio),
		Logger:   logger,
	})
}
