// README: Recommendation history store backed by PostgreSQL.
package recommendation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the recommendations table on startup. Records are
// insert-only; no update or delete path exists.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{`
        CREATE TABLE IF NOT EXISTS recommendations (
            id             TEXT PRIMARY KEY,
            interests      TEXT NOT NULL,
            duration       TEXT NOT NULL,
            season         TEXT NOT NULL,
            activity_level TEXT NOT NULL,
            generated_text TEXT NOT NULL,
            succeeded      BOOLEAN NOT NULL DEFAULT FALSE,
            tool_results   JSONB NOT NULL DEFAULT '[]',
            created_at     TIMESTAMPTZ NOT NULL
        )`, `
        CREATE INDEX IF NOT EXISTS recommendations_created_at_idx
            ON recommendations (created_at DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Save(ctx context.Context, rec *Record) error {
	toolJSON, err := json.Marshal(rec.ToolResults)
	if err != nil {
		return fmt.Errorf("marshal tool results: %w", err)
	}

	_, err = s.db.Exec(ctx, `
        INSERT INTO recommendations (
            id, interests, duration, season, activity_level,
            generated_text, succeeded, tool_results, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID,
		rec.Request.Interests,
		rec.Request.Duration,
		rec.Request.Season,
		rec.Request.ActivityLevel,
		rec.GeneratedText,
		rec.Succeeded,
		toolJSON,
		rec.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, interests, duration, season, activity_level,
               generated_text, succeeded, tool_results, created_at
        FROM recommendations
        WHERE id = $1`, id,
	)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, interests, duration, season, activity_level,
               generated_text, succeeded, tool_results, created_at
        FROM recommendations
        ORDER BY created_at DESC, id DESC
        LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRecord(row scannable) (*Record, error) {
	var (
		rec      Record
		toolJSON []byte
	)
	err := row.Scan(
		&rec.ID,
		&rec.Request.Interests,
		&rec.Request.Duration,
		&rec.Request.Season,
		&rec.Request.ActivityLevel,
		&rec.GeneratedText,
		&rec.Succeeded,
		&toolJSON,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(toolJSON) > 0 {
		if err := json.Unmarshal(toolJSON, &rec.ToolResults); err != nil {
			return nil, fmt.Errorf("unmarshal tool results for %s: %w", rec.ID, err)
		}
	}
	return &rec, nil
}
