// Package storage provides the SQLite episode journal used by the headless
// benchmark. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Episode is the recorded outcome of one simulated episode.
type Episode struct {
	ID         int64
	GameID     string // "snake" or "snake_duel"
	Algorithm  string
	Difficulty string
	Mode       string
	Seed       int64
	Score      int
	RivalScore int
	Length     int   // Final player body length
	Ticks      int64 // Running ticks until the episode ended
	EndReason  string
	CreatedAt  time.Time
}

// AlgorithmStat aggregates the journal for one search strategy.
type AlgorithmStat struct {
	Algorithm string
	Episodes  int
	AvgScore  float64
	MaxScore  int
	AvgLength float64
	AvgTicks  float64
}

// Filter narrows journal queries. Empty fields match everything.
type Filter struct {
	Algorithm  string
	Difficulty string
	Mode       string
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
		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			rival_score INTEGER NOT NULL DEFAULT 0,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_algorithm ON episodes(algorithm);
		CREATE INDEX IF NOT EXISTS idx_episodes_top ON episodes(algorithm, score DESC);
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

// SaveEpisode records an episode and returns its ID.
func (s *Store) SaveEpisode(e Episode) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO episodes
		 (game_id, algorithm, difficulty, mode, seed, score, rival_score, length, ticks, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.GameID, e.Algorithm, e.Difficulty, e.Mode, e.Seed,
		e.Score, e.RivalScore, e.Length, e.Ticks, e.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// where builds the WHERE clause for a filter.
func (f Filter) where() (string, []any) {
	var conds []string
	var args []any
	for _, c := range []struct{ col, val string }{
		{"algorithm", f.Algorithm},
		{"difficulty", f.Difficulty},
		{"mode", f.Mode},
	} {
		if c.val != "" {
			conds = append(conds, c.col+" = ?")
			args = append(args, c.val)
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

const episodeColumns = `id, game_id, algorithm, difficulty, mode, seed, score,
	rival_score, length, ticks, end_reason, created_at`

// TopEpisodes retrieves the best-scoring episodes matching f.
// Ties go to the episode that needed fewer ticks.
func (s *Store) TopEpisodes(f Filter, limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 10
	}
	where, args := f.where()
	return s.queryEpisodes(
		`SELECT `+episodeColumns+` FROM episodes `+where+`
		 ORDER BY score DESC, ticks ASC
		 LIMIT ?`,
		append(args, limit)...,
	)
}

// RecentEpisodes retrieves the most recently recorded episodes.
func (s *Store) RecentEpisodes(limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryEpisodes(
		`SELECT `+episodeColumns+` FROM episodes
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryEpisodes(query string, args ...any) ([]Episode, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		var e Episode
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Algorithm, &e.Difficulty, &e.Mode, &e.Seed,
			&e.Score, &e.RivalScore, &e.Length, &e.Ticks, &e.EndReason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		episodes = append(episodes, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return episodes, nil
}

// AlgorithmStats aggregates the episodes matching f per algorithm, sorted by
// average score descending.
func (s *Store) AlgorithmStats(f Filter) ([]AlgorithmStat, error) {
	where, args := f.where()
	rows, err := s.db.Query(
		`SELECT algorithm, COUNT(*), AVG(score), MAX(score), AVG(length), AVG(ticks)
		 FROM episodes `+where+`
		 GROUP BY algorithm
		 ORDER BY AVG(score) DESC, algorithm ASC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []AlgorithmStat
	for rows.Next() {
		var st AlgorithmStat
		if err := rows.Scan(&st.Algorithm, &st.Episodes, &st.AvgScore, &st.MaxScore,
			&st.AvgLength, &st.AvgTicks); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearEpisodes removes every recorded episode and returns how many were deleted.
func (s *Store) ClearEpisodes() (int64, error) {
	result, err := s.db.Exec("DELETE FROM episodes")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear episodes: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
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
