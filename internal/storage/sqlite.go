// Package storage provides SQLite-based persistence for recorded rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/antarctic/internal/replay"
)

// Store manages the SQLite database connection for the round journal.
type Store struct {
	db *sql.DB
}

// RoundEntry is the summary of one recorded round.
type RoundEntry struct {
	ID         int64
	GameID     string
	Seed       int64
	Steps      int
	Ticks      int
	Score      int
	Outcome    replay.Outcome
	FrameCount int
	CreatedAt  time.Time
}

// RoundRecord is a journal entry together with its decoded recording.
type RoundRecord struct {
	RoundEntry
	Round replay.Round
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			frame_count INTEGER NOT NULL DEFAULT 0,
			frames BLOB NOT NULL,
			config TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_recent ON rounds(game_id, id DESC);
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

// SaveRound records a finished round for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(gameID string, r replay.Round) (int64, error) {
	frames, err := replay.EncodeFrames(r.Frames)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (game_id, seed, steps, ticks, score, outcome, frame_count, frames, config)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gameID, r.Seed, r.Steps, r.Ticks, r.Score, string(r.Outcome), len(r.Frames), frames, string(r.Config),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Ensure Store implements the replay journal
var _ replay.Journal = (*Store)(nil)

// RecentRounds retrieves the most recently recorded rounds for a game.
// Results are ordered newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, steps, ticks, score, outcome, frame_count, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var outcome string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Seed, &e.Steps, &e.Ticks, &e.Score, &outcome, &e.FrameCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Outcome = replay.Outcome(outcome)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RoundByID loads a recorded round with its frames.
// Returns nil without error if no round has that ID.
func (s *Store) RoundByID(id int64) (*RoundRecord, error) {
	var rec RoundRecord
	var outcome, cfg string
	var frames []byte
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, seed, steps, ticks, score, outcome, frame_count, frames, config, created_at
		 FROM rounds
		 WHERE id = ?`,
		id,
	).Scan(
		&rec.ID,
		&rec.GameID,
		&rec.Seed,
		&rec.Steps,
		&rec.Ticks,
		&rec.Score,
		&outcome,
		&rec.FrameCount,
		&frames,
		&cfg,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}

	rec.Outcome = replay.Outcome(outcome)
	rec.CreatedAt = parseTime(createdAt)

	decoded, err := replay.DecodeFrames(frames)
	if err != nil {
		return nil, fmt.Errorf("storage: round %d: %w", id, err)
	}

	rec.Round = replay.Round{
		Seed:    rec.Seed,
		Steps:   rec.Steps,
		Ticks:   rec.Ticks,
		Score:   rec.Score,
		Outcome: rec.Outcome,
		Frames:  decoded,
	}
	if cfg != "" {
		rec.Round.Config = []byte(cfg)
	}

	return &rec, nil
}

// CountRounds returns how many rounds are recorded for a game.
func (s *Store) CountRounds(gameID string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM rounds WHERE game_id = ?", gameID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return n, nil
}

// ClearRounds deletes all recorded rounds for the given game.
func (s *Store) ClearRounds(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
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
