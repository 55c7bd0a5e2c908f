// Package replay records the per-tick input of an Alien Invaders session
// and re-simulates recordings headlessly. The simulation is deterministic
// for a given seed, screen size, tick rate and config, so a recording is
// verified by comparing the final snapshot hash.
package replay

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// ErrMismatch is returned when a re-simulated session ends in a different
// state than the one recorded.
var ErrMismatch = errors.New("replay: final state mismatch")

// OutcomeQuit marks a session the player left before it ended.
const OutcomeQuit = "quit"

// Recorder collects the input of one session, one byte per tick.
type Recorder struct {
	gameID string
	rt     core.RuntimeConfig
	preset string
	inputs []byte
}

// NewRecorder starts an empty recording for a session that was Reset with rt.
func NewRecorder(gameID string, rt core.RuntimeConfig, preset string) *Recorder {
	return &Recorder{
		gameID: gameID,
		rt:     rt,
		preset: preset,
		inputs: make([]byte, 0, 60*rt.TickRate),
	}
}

// Record appends the input of one tick.
func (r *Recorder) Record(in core.InputFrame) {
	r.inputs = append(r.inputs, in.Mask())
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	return len(r.inputs)
}

// Finish builds the stored form of the recording from the game's final
// state. Outcome defaults to the game's own and falls back to OutcomeQuit.
func (r *Recorder) Finish(g *invaders.Game) (storage.Replay, error) {
	cfgYAML, err := config.Marshal(g.Config())
	if err != nil {
		return storage.Replay{}, fmt.Errorf("replay: encode config: %w", err)
	}

	outcome := g.Outcome()
	if outcome == "" {
		outcome = OutcomeQuit
	}
	state := g.State()
	snap := g.Snapshot()

	inputs := make([]byte, len(r.inputs))
	copy(inputs, r.inputs)

	return storage.Replay{
		GameID:   r.gameID,
		Seed:     r.rt.Seed,
		TickRate: r.rt.TickRate,
		ScreenW:  r.rt.ScreenW,
		ScreenH:  r.rt.ScreenH,
		Preset:   r.preset,
		Config:   cfgYAML,
		Inputs:   inputs,
		Score:    state.Score,
		Waves:    state.Wave,
		Outcome:  outcome,
		Hash:     snap.Hash(),
	}, nil
}

// Run re-simulates a recording and returns the final snapshot.
func Run(rec storage.Replay) (invaders.Snapshot, error) {
	mode, ok := invaders.ModeForID(rec.GameID)
	if !ok {
		return invaders.Snapshot{}, fmt.Errorf("replay: unknown game %q", rec.GameID)
	}
	cfg, err := config.Parse(rec.Config)
	if err != nil {
		return invaders.Snapshot{}, fmt.Errorf("replay: decode config: %w", err)
	}

	g := invaders.NewWithConfig(mode, cfg)
	g.Reset(core.RuntimeConfig{
		ScreenW:  rec.ScreenW,
		ScreenH:  rec.ScreenH,
		TickRate: rec.TickRate,
		Seed:     rec.Seed,
	})
	for _, mask := range rec.Inputs {
		g.Step(core.FrameFromMask(mask))
	}
	return g.Snapshot(), nil
}

// Verify re-simulates rec and checks it against the recorded result.
func Verify(rec storage.Replay, logger *log.Logger) error {
	snap, err := Run(rec)
	if err != nil {
		return err
	}

	got := snap.Hash()
	if got != rec.Hash || snap.Score != rec.Score {
		logger.Warn("replay diverged",
			"id", rec.ID,
			"ticks", len(rec.Inputs),
			"want_hash", rec.Hash,
			"got_hash", got,
			"want_score", rec.Score,
			"got_score", snap.Score)
		return fmt.Errorf("%w: want hash %d score %d, got hash %d score %d",
			ErrMismatch, rec.Hash, rec.Score, got, snap.Score)
	}

	logger.Info("replay verified",
		"id", rec.ID,
		"game", rec.GameID,
		"ticks", len(rec.Inputs),
		"score", snap.Score,
		"wave", snap.WaveNum)
	return nil
}
