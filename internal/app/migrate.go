package app

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Schema is idempotent; every statement tolerates re-running at boot.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS apartments (
		id            UUID PRIMARY KEY,
		apartment_no  TEXT NOT NULL,
		floor_no      TEXT NOT NULL,
		block_name    TEXT NOT NULL,
		image         TEXT NOT NULL DEFAULT '',
		rent          BIGINT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		role        TEXT NOT NULL DEFAULT 'user',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users (email)`,
	`CREATE TABLE IF NOT EXISTS agreements (
		id            UUID PRIMARY KEY,
		user_name     TEXT NOT NULL,
		email         TEXT NOT NULL,
		floor_no      TEXT NOT NULL,
		block_name    TEXT NOT NULL,
		apartment_no  TEXT NOT NULL,
		rent          BIGINT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'pending',
		accept_date   TEXT,
		last_payment  TEXT,
		month         TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_agreements_email ON agreements (email)`,
	`CREATE TABLE IF NOT EXISTS announcements (
		id          UUID PRIMARY KEY,
		title       TEXT NOT NULL,
		details     TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS coupons (
		id           UUID PRIMARY KEY,
		code         TEXT NOT NULL,
		discount     INT NOT NULL DEFAULT 0,
		description  TEXT NOT NULL DEFAULT '',
		available    BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payment_history (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL,
		month         TEXT NOT NULL,
		rent          BIGINT NOT NULL,
		payment_date  TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payment_history_email ON payment_history (email)`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
