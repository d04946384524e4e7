package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres persists blobs in the storefront_blobs table. This is the durable
// backend for cart state: one row per key, last write wins.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM storefront_blobs WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select blob: %w", err)
	}
	return value, true, nil
}

func (s *Postgres) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO storefront_blobs (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = NOW()
`, key, value)
	if err != nil {
		return fmt.Errorf("upsert blob: %w", err)
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM storefront_blobs WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}
