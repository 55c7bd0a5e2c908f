package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/replay"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagDelete bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate and verify a recorded session",
	Long: `Re-run a recorded session from its seed, config and inputs and check
that it reaches the same final state and score.

A mismatch means the simulation is no longer deterministic for that
recording, usually because game rules changed since it was made.

Examples:
  invaders replay 12
  invaders replay 12 --log-level debug
  invaders replay 12 --delete`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the replay instead of verifying it")
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replays database: %w", err)
	}
	defer store.Close()

	if flagDelete {
		if err := store.DeleteReplay(id); err != nil {
			return err
		}
		fmt.Printf("Replay %d deleted.\n", id)
		return nil
	}

	rec, err := store.Replay(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no replay with id %d, run 'invaders replays' to list them", id)
	}
	if err != nil {
		return err
	}

	if err := replay.Verify(rec, logger); err != nil {
		if errors.Is(err, replay.ErrMismatch) {
			return fmt.Errorf("replay %d diverged: %w", id, err)
		}
		return err
	}

	fmt.Printf("Replay %d OK: %s, score %d, wave %d, %s after %d ticks\n",
		id, rec.GameID, rec.Score, rec.Waves, rec.Outcome, len(rec.Inputs))
	return nil
}
