package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQL stores blobs in a two-column kv table (see persistence/v1/schema).
// Writes delete-then-insert inside a transaction so the key is either the old
// blob or the new one, never both and never neither.
type SQL struct {
	db               *sql.DB
	operationTimeout time.Duration
}

func NewSQL(db *sql.DB, operationTimeout time.Duration) *SQL {
	return &SQL{
		db:               db,
		operationTimeout: operationTimeout,
	}
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.operationTimeout)
	defer dbCancel()

	stmt, err := s.db.PrepareContext(dbCtx, "SELECT v FROM storage WHERE k = ?")
	if err != nil {
		return "", fmt.Errorf("failed to prepare get stmt: %w", err)
	}

	var value string
	err = stmt.QueryRowContext(dbCtx, key).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		return "", ErrNotFound
	case err != nil:
		return "", fmt.Errorf("failed to query key %s: %w", key, err)
	default:
		return value, nil
	}
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.operationTimeout)
	defer dbCancel()

	tx, err := s.db.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin set tx: %w", err)
	}

	if _, err := tx.ExecContext(dbCtx, "DELETE FROM storage WHERE k = ?", key); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear key %s: %w", key, err)
	}
	if _, err := tx.ExecContext(dbCtx, "INSERT INTO storage (k, v) VALUES (?, ?)", key, value); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to insert key %s: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit set tx: %w", err)
	}
	return nil
}
