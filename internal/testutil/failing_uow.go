package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/lessonlog/internal/db"
)

// FailingUoW runs use cases against a real transaction but makes the failOn-th
// write (counting from 1) return err instead of reaching SQLite. Reads are not
// counted. Used to prove that a failure at any write leaves stored state as it
// was.
type FailingUoW struct {
	inner  db.UnitOfWork
	failOn int32
	err    error
	writes atomic.Int32
}

func NewFailingUoW(database *sql.DB, failOn int32, err error) *FailingUoW {
	return &FailingUoW{inner: db.NewSQLiteUnitOfWork(database), failOn: failOn, err: err}
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &countingTx{DBTX: tx, uow: u})
	})
}

// Writes reports how many writes have been attempted across all transactions.
func (u *FailingUoW) Writes() int32 {
	return u.writes.Load()
}

type countingTx struct {
	db.DBTX
	uow *FailingUoW
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.uow.writes.Add(1) == c.uow.failOn {
		return nil, c.uow.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
