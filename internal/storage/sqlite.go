// Package storage persists recorded sessions in SQLite so they can be
// listed and re-simulated later. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a replay ID does not exist.
var ErrNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// Replay is one recorded session: everything needed to re-run it plus the
// result it produced.
type Replay struct {
	ID       int64
	GameID   string
	Player   string // SSH user, empty for local play
	Seed     int64
	TickRate int
	ScreenW  int
	ScreenH  int
	Preset   string
	Config   []byte // Effective config as YAML
	Inputs   []byte // One input mask per tick

	Score   int
	Waves   int
	Outcome string // "win", "breached", "lives" or "quit"
	Hash    uint64 // Final snapshot hash

	CreatedAt time.Time
}

// Summary is the listing view of a replay, without its payload.
type Summary struct {
	ID        int64
	GameID    string
	Player    string
	Seed      int64
	Ticks     int
	Score     int
	Waves     int
	Outcome   string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			screen_w INTEGER NOT NULL,
			screen_h INTEGER NOT NULL,
			preset TEXT NOT NULL DEFAULT '',
			config BLOB NOT NULL,
			inputs BLOB NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			waves INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			hash INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay records a session and returns its ID.
func (s *Store) SaveReplay(r Replay) (int64, error) {
	if r.Config == nil {
		r.Config = []byte{}
	}
	if r.Inputs == nil {
		r.Inputs = []byte{}
	}
	result, err := s.db.Exec(
		`INSERT INTO replays
		 (game_id, player, seed, tick_rate, screen_w, screen_h, preset, config, inputs, score, waves, outcome, hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Seed, r.TickRate, r.ScreenW, r.ScreenH, r.Preset,
		r.Config, r.Inputs, r.Score, r.Waves, r.Outcome,
		int64(r.Hash), //#nosec G115 -- stored bit-for-bit
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Replay loads a full replay by ID. It returns ErrNotFound for unknown IDs.
func (s *Store) Replay(id int64) (Replay, error) {
	var r Replay
	var hash int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, player, seed, tick_rate, screen_w, screen_h, preset,
		        config, inputs, score, waves, outcome, hash, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(
		&r.ID, &r.GameID, &r.Player, &r.Seed, &r.TickRate, &r.ScreenW, &r.ScreenH, &r.Preset,
		&r.Config, &r.Inputs, &r.Score, &r.Waves, &r.Outcome, &hash, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Replay{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return Replay{}, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	r.Hash = uint64(hash) //#nosec G115 -- stored bit-for-bit
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// ListReplays returns the most recent replays, newest first. An empty
// gameID lists every mode.
func (s *Store) ListReplays(gameID string, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, seed, length(inputs), score, waves, outcome, created_at
		 FROM replays
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var sum Summary
		var createdAt any
		if err := rows.Scan(&sum.ID, &sum.GameID, &sum.Player, &sum.Seed, &sum.Ticks, &sum.Score, &sum.Waves, &sum.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.CreatedAt = parseTime(createdAt)
		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summaries, nil
}

// DeleteReplay removes a replay. It returns ErrNotFound for unknown IDs.
func (s *Store) DeleteReplay(id int64) error {
	res, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
