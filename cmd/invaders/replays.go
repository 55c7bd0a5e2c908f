package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagReplayLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays [mode]",
	Short: "List recorded sessions",
	Long: `List recorded sessions, newest first.

Examples:
  invaders replays
  invaders replays invaders_endless
  invaders replays --limit 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Maximum number of replays to show")
}

func runReplays(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown mode %q, run 'invaders list' to see available modes", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replays database: %w", err)
	}
	defer store.Close()

	list, err := store.ListReplays(gameID, flagReplayLimit)
	if err != nil {
		return fmt.Errorf("listing replays: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to record one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-17s  %-10s  %-7s  %-4s  %-8s  %-7s  %s\n",
		"ID", "Mode", "Player", "Score", "Wave", "Outcome", "Ticks", "Date")
	fmt.Printf("  %-5s  %-17s  %-10s  %-7s  %-4s  %-8s  %-7s  %s\n",
		"--", "----", "------", "-----", "----", "-------", "-----", "----")

	for _, r := range list {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-5d  %-17s  %-10s  %-7d  %-4d  %-8s  %-7d  %s\n",
			r.ID, r.GameID, player, r.Score, r.Waves, r.Outcome, r.Ticks,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'invaders replay <id>' to verify a replay.")
	return nil
}
