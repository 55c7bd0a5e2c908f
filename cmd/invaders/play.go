package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: invaders).

Modes:
  invaders          - Campaign: clear a fixed number of waves to win
  invaders_endless  - Endless: waves keep coming, faster each time

Controls:
  Left/Right/A/D   - Move ship
  Space/Up/W       - Fire
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - Extra lives, slower march, fewer alien bolts
  normal - Default rules with per-wave speed-up
  hard   - Fewer lives, faster march, more alien bolts
  fixed  - No per-wave speed-up

Every session is recorded and can be checked with 'invaders replay'.

Examples:
  invaders play
  invaders play invaders_endless
  invaders play --difficulty hard
  invaders play --seed 42 --fps 30
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that choose the game config.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags validates the config flags and hands them to the game.
func applyGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "invaders"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'invaders list' to see available modes", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open replay storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replays database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, terminalConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Preset: flagDifficulty,
	})
	return err
}
