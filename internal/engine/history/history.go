// Package history persists compatibility analyses so past runs can be
// listed and compared. Storage is SQLite in the user's home directory
// by default, with an optional PostgreSQL backend for shared
// deployments.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one stored analysis.
type Entry struct {
	ID           int64           `json:"id"`
	ResumeName   string          `json:"resume_name"`
	JobTitle     string          `json:"job_title"`
	Company      string          `json:"company,omitempty"`
	Language     string          `json:"language"`
	OverallScore float64         `json:"overall_score"`
	Result       json.RawMessage `json:"result,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

// ListInput filters a history listing.
type ListInput struct {
	Limit    int     `json:"limit,omitempty" jsonschema:"Max entries to return (default 20, max 100)"`
	MinScore float64 `json:"min_score,omitempty" jsonschema:"Only entries with overall_score at or above this value"`
}

// ListResult is the output of a history listing.
type ListResult struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

var (
	localDB   *sql.DB
	localOnce sync.Once
	localErr  error

	// localPath overrides the default SQLite location when set
	// before first use.
	localPath string
	pathMu    sync.Mutex
)

// SetPath overrides the SQLite database location. Must be called
// before the first Save or List.
func SetPath(path string) {
	pathMu.Lock()
	defer pathMu.Unlock()
	localPath = path
}

// openLocalDB opens (or creates) the SQLite history database.
func openLocalDB() (*sql.DB, error) {
	localOnce.Do(func() {
		pathMu.Lock()
		dbPath := localPath
		pathMu.Unlock()
		if dbPath == "" {
			dir := filepath.Join(os.Getenv("HOME"), ".go_match")
			if err := os.MkdirAll(dir, 0750); err != nil {
				localErr = fmt.Errorf("history: mkdir %s: %w", dir, err)
				return
			}
			dbPath = filepath.Join(dir, "history.db")
		} else if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			localErr = fmt.Errorf("history: mkdir %s: %w", filepath.Dir(dbPath), err)
			return
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			localErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initLocalSchema(db); err != nil {
			localErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		localDB = db
	})
	return localDB, localErr
}

// initLocalSchema creates the analyses table if it doesn't exist.
func initLocalSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		resume_name   TEXT NOT NULL,
		job_title     TEXT NOT NULL,
		company       TEXT,
		language      TEXT NOT NULL,
		overall_score REAL NOT NULL,
		result        TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`)
	return err
}

// Save stores one analysis and returns its id. Routes to PostgreSQL
// when a shared backend is connected, SQLite otherwise.
func Save(ctx context.Context, e Entry) (int64, error) {
	if e.JobTitle == "" {
		return 0, errors.New("history: job title is required")
	}
	if len(e.Result) == 0 {
		return 0, errors.New("history: result payload is required")
	}
	if db := GetSharedDB(); db != nil {
		return db.save(ctx, e)
	}

	db, err := openLocalDB()
	if err != nil {
		return 0, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.ExecContext(ctx,
		`INSERT INTO analyses (resume_name, job_title, company, language, overall_score, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ResumeName, e.JobTitle, e.Company, e.Language, e.OverallScore, string(e.Result), now,
	)
	if err != nil {
		return 0, fmt.Errorf("history: insert: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// List returns stored analyses, newest first, optionally filtered by a
// minimum overall score.
func List(ctx context.Context, in ListInput) (*ListResult, error) {
	if db := GetSharedDB(); db != nil {
		return db.list(ctx, in)
	}

	db, err := openLocalDB()
	if err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, resume_name, job_title, company, language, overall_score, result, created_at
		 FROM analyses WHERE overall_score >= ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		in.MinScore, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var company sql.NullString
		var result string
		if err := rows.Scan(&e.ID, &e.ResumeName, &e.JobTitle, &company, &e.Language,
			&e.OverallScore, &result, &e.CreatedAt); err != nil {
			continue
		}
		e.Company = company.String
		e.Result = json.RawMessage(result)
		entries = append(entries, e)
	}

	var total int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analyses WHERE overall_score >= ?`, in.MinScore).Scan(&total) //nolint:errcheck

	if entries == nil {
		entries = []Entry{}
	}
	return &ListResult{Entries: entries, Total: total}, nil
}
