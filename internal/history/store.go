// Package history persists quiz attempt records in a local JSON file.
//
// The file is an append-only log in spirit: records are never mutated or
// deleted, and each append rewrites the whole file with the combined list.
// A missing, unreadable or corrupt file is treated as empty history, never
// as a fatal error. Single-writer by design; concurrent processes against
// the same file can lose an append (last writer wins).
package history

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// TimeLayout is the fixed minute-resolution timestamp format on records.
const TimeLayout = "2006-01-02 15:04"

// AttemptRecord is one durable, immutable log entry of a scored attempt.
type AttemptRecord struct {
	Name       string  `json:"name"`
	Age        string  `json:"age"`
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Time       string  `json:"time"`
}

// NewAttempt builds a record for a completed submission, stamping it with
// the local clock at minute resolution and the percentage rounded to two
// decimal places.
func NewAttempt(name, age string, score, total int, now time.Time) AttemptRecord {
	var pct float64
	if total > 0 {
		pct = math.Round(float64(score)/float64(total)*100*100) / 100
	}
	return AttemptRecord{
		Name:       name,
		Age:        age,
		Score:      score,
		Total:      total,
		Percentage: pct,
		Time:       now.Format(TimeLayout),
	}
}

// Store reads and writes the attempt history file.
type Store struct {
	path string
}

// NewStore creates a Store for the given file path. The file need not exist.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the history file path.
func (s *Store) Path() string {
	return s.path
}

// LoadAll returns all recorded attempts in insertion order. Absent or
// corrupt history reads as empty; this method never fails.
func (s *Store) LoadAll() []AttemptRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var records []AttemptRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// Append adds a record to the durable list. It loads the current list
// (empty on absence or corruption), appends, and atomically rewrites the
// file via a temp-file rename so a crash mid-write cannot corrupt
// previously saved history.
func (s *Store) Append(rec AttemptRecord) error {
	records := append(s.LoadAll(), rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".quiz_history-*.json")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close history file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace history file: %w", err)
	}

	return nil
}

// Rank orders records for the leaderboard: highest percentage first, ties
// broken by original insertion order. The input slice is not modified.
func Rank(records []AttemptRecord) []AttemptRecord {
	ranked := make([]AttemptRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percentage > ranked[j].Percentage
	})
	return ranked
}

// DefaultPath resolves the history file path in priority order:
// 1. QUIZBEE_HISTORY environment variable
// 2. $XDG_DATA_HOME/quizbee/quiz_history.json
// 3. ~/.local/share/quizbee/quiz_history.json
func DefaultPath() (string, error) {
	if p := os.Getenv("QUIZBEE_HISTORY"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "quizbee", "quiz_history.json"), nil
}
