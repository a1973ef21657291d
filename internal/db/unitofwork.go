package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/sprout/internal/logging"
)

// UnitOfWork runs a function inside one transaction. The callback receives
// a tx-backed DBTX from which it builds tx-scoped repositories, so a student
// with its first activities, or a report with the grade it updates, is
// stored all at once or not at all.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

// WithinTx commits when fn returns nil and rolls back on error or panic.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logging.Ctx(ctx).Error().Err(rbErr).Msg("transaction rollback failed")
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		logging.Ctx(ctx).Debug().Err(err).Msg("transaction rolled back")
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
