// Package history keeps a completion log in SQLite. Every done/undone
// toggle is appended here, so review and insights can look across weeks
// even after the plan has been regenerated and the in-state task list
// replaced.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/josephgoksu/solventdeck/models"
)

// Log is the SQLite-backed completion log.
type Log struct {
	db *sql.DB
}

// Open opens (or creates) the completion log under basePath. Pass
// ":memory:" for an ephemeral log in tests.
func Open(basePath string) (*Log, error) {
	var dbPath string
	if basePath == ":memory:" {
		dbPath = ":memory:"
	} else {
		dbPath = filepath.Join(basePath, "history.db")
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	l := &Log{db: db}
	if err := l.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return l, nil
}

func (l *Log) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS completions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id TEXT NOT NULL,
		card_id TEXT,
		title TEXT NOT NULL,
		suit TEXT NOT NULL,
		rank TEXT NOT NULL,
		week_start TEXT NOT NULL,
		date TEXT NOT NULL,
		duration INTEGER NOT NULL,
		done INTEGER NOT NULL,
		recorded_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_completions_title ON completions(title);
	CREATE INDEX IF NOT EXISTS idx_completions_week ON completions(week_start);
	`
	_, err := l.db.Exec(schema)
	return err
}

// RecordToggle appends one done/undone transition for a task.
func (l *Log) RecordToggle(task models.Task, weekStart string, now time.Time) error {
	done := 0
	if task.Done() {
		done = 1
	}
	_, err := l.db.Exec(
		`INSERT INTO completions (task_id, card_id, title, suit, rank, week_start, date, duration, done, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.CardID, task.Title, string(task.Suit), string(task.Rank),
		weekStart, task.Date, task.Duration, done, now.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record toggle: %w", err)
	}
	return nil
}

// TitleStat aggregates completion counts for one task title.
type TitleStat struct {
	Title string
	Total int
	Done  int
}

// Ratio returns the done/total ratio, zero-safe.
func (s TitleStat) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Done) / float64(s.Total)
}

// TitleStats returns up to limit titles ordered by completion ratio,
// highest first. A title's counts span all recorded weeks.
func (l *Log) TitleStats(limit int) ([]TitleStat, error) {
	rows, err := l.db.Query(
		`SELECT title, COUNT(*) AS total, SUM(done) AS done
		 FROM completions
		 GROUP BY title
		 ORDER BY CAST(SUM(done) AS REAL) / COUNT(*) DESC, total DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query title stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats []TitleStat
	for rows.Next() {
		var s TitleStat
		if err := rows.Scan(&s.Title, &s.Total, &s.Done); err != nil {
			return nil, fmt.Errorf("scan title stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// WeekCount holds toggle counts for one recorded week.
type WeekCount struct {
	WeekStart string
	Total     int
	Done      int
}

// Weeks returns recorded weeks, most recent first.
func (l *Log) Weeks() ([]WeekCount, error) {
	rows, err := l.db.Query(
		`SELECT week_start, COUNT(*) AS total, SUM(done) AS done
		 FROM completions
		 GROUP BY week_start
		 ORDER BY week_start DESC`)
	if err != nil {
		return nil, fmt.Errorf("query weeks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var weeks []WeekCount
	for rows.Next() {
		var w WeekCount
		if err := rows.Scan(&w.WeekStart, &w.Total, &w.Done); err != nil {
			return nil, fmt.Errorf("scan week count: %w", err)
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

// Close releases the underlying database handle.
func (l *Log) Close() error {
	return l.db.Close()
}
