package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/sprout/internal/db"
)

// FailOnExecUoW is a UnitOfWork that injects Err into the Nth write whose
// SQL contains Match, so rollback tests can target a specific statement
// ("UPDATE students", "INSERT INTO current_activities") instead of counting
// every write. An empty Match counts all writes; Nth starts at 1.
// Reads are never intercepted.
type FailOnExecUoW struct {
	DB    *sql.DB
	Match string
	Nth   int
	Err   error
}

func (u *FailOnExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	nth := u.Nth
	if nth < 1 {
		nth = 1
	}
	wrapped := &failingExec{DBTX: tx, match: u.Match, nth: nth, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	mu    sync.Mutex
	seen  int
	match string
	nth   int
	err   error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.hit(query) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

func (f *failingExec) hit(query string) bool {
	if f.match != "" && !strings.Contains(query, f.match) {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen++
	return f.seen == f.nth
}
