package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-shield/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
	Long: `Work with Bounce Shield configuration files.

Configs are searched in this order: --config, ~/.bounce/configs/shield.yaml
(or .toml), ./configs/shield.yaml, then built-in defaults.`,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after applying --config and
--difficulty.

Examples:
  bounce config dump > ~/.bounce/configs/shield.yaml
  bounce config dump --format toml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigCheck,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) error {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	out, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runConfigCheck(_ *cobra.Command, args []string) error {
	cfg, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	fmt.Printf("%s: ok\n", args[0])
	return nil
}
