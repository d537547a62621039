package history

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// SharedDB holds the pgx connection pool for the shared history
// backend.
type SharedDB struct {
	pool *pgxpool.Pool
}

// Package-level singleton, set from main.go.
var sharedDB *SharedDB

// SetSharedDB sets the package-level shared DB instance.
func SetSharedDB(db *SharedDB) { sharedDB = db }

// GetSharedDB returns the package-level shared DB instance (may be nil).
func GetSharedDB() *SharedDB { return sharedDB }

// Connect creates a pgx pool and runs schema migrations.
func Connect(ctx context.Context, databaseURL string) (*SharedDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	db := &SharedDB{pool: pool}
	if err := db.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	slog.Info("history: postgres backend connected")
	return db, nil
}

// Close releases the connection pool.
func (db *SharedDB) Close() {
	if db != nil && db.pool != nil {
		db.pool.Close()
	}
}

// migrate applies embedded schema files in lexical order.
func (db *SharedDB) migrate(ctx context.Context) error {
	names, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return fmt.Errorf("migrate: glob: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		ddl, err := schemaFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("migrate: read %s: %w", name, err)
		}
		if _, err := db.pool.Exec(ctx, string(ddl)); err != nil {
			return fmt.Errorf("migrate: apply %s: %w", name, err)
		}
	}
	return nil
}

func (db *SharedDB) save(ctx context.Context, e Entry) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (resume_name, job_title, company, language, overall_score, result)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		e.ResumeName, e.JobTitle, e.Company, e.Language, e.OverallScore, string(e.Result),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("history: insert: %w", err)
	}
	return id, nil
}

func (db *SharedDB) list(ctx context.Context, in ListInput) (*ListResult, error) {
	limit := in.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_name, job_title, COALESCE(company, ''), language, overall_score, result::text,
		        to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"')
		 FROM analyses WHERE overall_score >= $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		in.MinScore, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var result string
		if err := rows.Scan(&e.ID, &e.ResumeName, &e.JobTitle, &e.Company, &e.Language,
			&e.OverallScore, &result, &e.CreatedAt); err != nil {
			continue
		}
		e.Result = json.RawMessage(result)
		entries = append(entries, e)
	}

	var total int
	db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM analyses WHERE overall_score >= $1`, in.MinScore).Scan(&total) //nolint:errcheck

	if entries == nil {
		entries = []Entry{}
	}
	return &ListResult{Entries: entries, Total: total}, nil
}
