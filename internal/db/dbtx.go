package db

import (
	"context"
	"database/sql"
)

// DBTX is what repositories need from a connection: *sql.DB outside a
// transaction, *sql.Tx inside one.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// TxFunc is the body of a unit of work. Every write a use case makes goes
// through tx so that a failure anywhere leaves the week untouched.
type TxFunc func(ctx context.Context, tx DBTX) error
