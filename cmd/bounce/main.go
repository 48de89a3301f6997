// bounce is a paddle-and-ball game for the terminal, the desktop and SSH.
//
// Usage:
//
//	bounce list              - List available modes
//	bounce play [mode]       - Play in the terminal
//	bounce menu              - Pick modes interactively, with a leaderboard
//	bounce window [mode]     - Play in a desktop window
//	bounce serve             - Start SSH server for remote play
//	bounce config dump       - Print the effective configuration
//	bounce config check <f>  - Validate a configuration file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a YAML or TOML config file
//	--difficulty <name>   - easy, normal, hard or fixed
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-shield/internal/config"
	"github.com/vovakirdan/bounce-shield/internal/games/shield"
	"github.com/vovakirdan/bounce-shield/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "bounce",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce Shield - keep the ball in play",
	Long: `Bounce Shield is a paddle-and-ball game. Move the paddle along the
bottom edge to keep the ball from falling. Every hit scores a point; miss
and you lose a heart.

Available commands:
  list     - Show all modes
  play     - Play a mode in the terminal
  menu     - Interactive mode picker with leaderboard
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Inspect and validate configuration

Examples:
  bounce play
  bounce play shield_classic --difficulty hard
  bounce window --config ./shield.toml
  bounce serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGlobalFlags validates shared flags and hands config choices to the game.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	shield.SetConfigPath(flagConfig)
	shield.SetDifficultyPreset(flagDifficulty)
	return nil
}

// resolveMode checks a mode ID against the registry, defaulting to "shield".
func resolveMode(args []string) (string, error) {
	id := "shield"
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown mode %q; run 'bounce list' to see available modes", id)
	}
	return id, nil
}

// shieldMode maps a registered mode ID to its milestone policy.
func shieldMode(id string) shield.Mode {
	if id == "shield_classic" {
		return shield.ModeClassic
	}
	return shield.ModeStandard
}

// loadConfig loads the config for a mode, logging why defaults were used.
func loadConfig(id string) config.ShieldConfig {
	cfg, err := shield.LoadConfig(shieldMode(id))
	if err != nil {
		logger.Warn("using default config", "error", err)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg
}

// playerName names leaderboard entries for local play.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "anonymous"
}
