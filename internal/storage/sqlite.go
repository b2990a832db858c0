// Package storage provides SQLite-based persistence for round history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Round outcomes as stored in the database.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned"
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundRecord represents one finished (or abandoned) round.
type RoundRecord struct {
	ID         int64
	TopicID    string
	Player     string // Local username or SSH user
	Outcome    string // "won", "lost", "abandoned"
	WordsFound int
	Credits    int // Credits remaining when the round ended
	Score      int
	Duration   int // Duration in seconds
	CreatedAt  time.Time
}

// TopicStats aggregates round history for one topic.
type TopicStats struct {
	TopicID   string
	Played    int
	Won       int
	BestScore int
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			topic_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			words_found INTEGER NOT NULL DEFAULT 0,
			credits INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_topic ON rounds(topic_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_recent ON rounds(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(topic_id, score DESC);
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

// SaveRound records a finished round. Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds
		 (topic_id, player, outcome, words_found, credits, score, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.TopicID, r.Player, r.Outcome, r.WordsFound, r.Credits, r.Score, r.Duration,
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

// RecentRounds retrieves the most recent N rounds, newest first.
// With an empty topicID it spans all topics.
func (s *Store) RecentRounds(topicID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, topic_id, player, outcome, words_found, credits, score, duration_secs, created_at
	          FROM rounds`
	args := []any{}
	if topicID != "" {
		query += " WHERE topic_id = ?"
		args = append(args, topicID)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// TopRounds retrieves the highest-scoring rounds for the given topic.
func (s *Store) TopRounds(topicID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, topic_id, player, outcome, words_found, credits, score, duration_secs, created_at
		 FROM rounds
		 WHERE topic_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		topicID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// HighScore returns the highest score recorded for the given topic.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(topicID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE topic_id = ?",
		topicID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats returns per-topic aggregates over all recorded rounds,
// ordered by topic ID.
func (s *Store) Stats() ([]TopicStats, error) {
	rows, err := s.db.Query(
		`SELECT topic_id,
		        COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        MAX(score)
		 FROM rounds
		 GROUP BY topic_id
		 ORDER BY topic_id`,
		OutcomeWon,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []TopicStats
	for rows.Next() {
		var st TopicStats
		var best sql.NullInt64
		if err := rows.Scan(&st.TopicID, &st.Played, &st.Won, &best); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if best.Valid {
			st.BestScore = int(best.Int64)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRounds deletes all rounds for the given topic.
// With an empty topicID it deletes everything.
func (s *Store) ClearRounds(topicID string) error {
	var err error
	if topicID == "" {
		_, err = s.db.Exec("DELETE FROM rounds")
	} else {
		_, err = s.db.Exec("DELETE FROM rounds WHERE topic_id = ?", topicID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

func scanRounds(rows *sql.Rows) ([]RoundRecord, error) {
	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.TopicID, &r.Player, &r.Outcome,
			&r.WordsFound, &r.Credits, &r.Score, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
