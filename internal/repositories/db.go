package repositories

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// DB is the subset of pgx operations the repositories need. It is
// satisfied by *pgxpool.Pool and by pgx.Tx, so a repository method
// can run inside or outside a transaction unchanged.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// TxBeginner is a DB that can open transactions (*pgxpool.Pool).
type TxBeginner interface {
	DB
	Begin(ctx context.Context) (pgx.Tx, error)
}
