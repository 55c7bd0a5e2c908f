package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the config a game would start with, as YAML.

The config is loaded the same way 'play' loads it (--config, then
~/.invaders/configs/invaders.yaml, then ./configs/invaders.yaml, then the
built-in defaults) and the --difficulty preset is applied on top.

Examples:
  invaders config > ~/.invaders/configs/invaders.yaml
  invaders config --difficulty hard
  invaders config --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
