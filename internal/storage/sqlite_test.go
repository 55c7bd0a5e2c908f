package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReplay(gameID string, score int) Replay {
	return Replay{
		GameID:   gameID,
		Player:   "alice",
		Seed:     42,
		TickRate: 60,
		ScreenW:  80,
		ScreenH:  24,
		Preset:   "hard",
		Config:   []byte("gameplay:\n  lives: 2\n"),
		Inputs:   []byte{0, 1, 2, 4, 0, 0},
		Score:    score,
		Waves:    2,
		Outcome:  "breached",
		Hash:     1<<63 + 12345,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)
	want := sampleReplay("invaders", 340)

	id, err := store.SaveReplay(want)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	if got.ID != id || got.GameID != want.GameID || got.Player != "alice" || got.Seed != want.Seed {
		t.Errorf("header mismatch: %+v", got)
	}
	if got.TickRate != 60 || got.ScreenW != 80 || got.ScreenH != 24 || got.Preset != "hard" {
		t.Errorf("runtime mismatch: %+v", got)
	}
	if !bytes.Equal(got.Inputs, want.Inputs) || !bytes.Equal(got.Config, want.Config) {
		t.Error("payload mismatch")
	}
	if got.Hash != want.Hash {
		t.Errorf("hash must survive the int64 column: got %d want %d", got.Hash, want.Hash)
	}
	if got.Score != 340 || got.Waves != 2 || got.Outcome != "breached" {
		t.Errorf("result mismatch: %+v", got)
	}
}

func TestStoreReplayNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Replay(999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteReplay(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestStoreListReplays(t *testing.T) {
	store := openTestStore(t)

	for i, gameID := range []string{"invaders", "invaders_endless", "invaders"} {
		if _, err := store.SaveReplay(sampleReplay(gameID, (i+1)*100)); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	all, err := store.ListReplays("", 10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 replays, got %d", len(all))
	}
	if all[0].Score != 300 {
		t.Errorf("Expected newest first, got score %d", all[0].Score)
	}
	if all[0].Player != "alice" {
		t.Errorf("Expected player alice, got %q", all[0].Player)
	}
	if all[0].Ticks != 6 {
		t.Errorf("Expected 6 ticks, got %d", all[0].Ticks)
	}

	campaign, err := store.ListReplays("invaders", 10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(campaign) != 2 {
		t.Errorf("Expected 2 campaign replays, got %d", len(campaign))
	}

	limited, err := store.ListReplays("", 1)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected limit to apply, got %d", len(limited))
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(sampleReplay("invaders", 10))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.Replay(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted replay should be gone, got %v", err)
	}
}
