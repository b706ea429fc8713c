package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		user_name       TEXT NOT NULL DEFAULT '',
		first_name      TEXT NOT NULL DEFAULT '',
		last_name       TEXT NOT NULL DEFAULT '',
		email           TEXT NOT NULL DEFAULT '',
		phone           TEXT NOT NULL DEFAULT '',
		document_type   TEXT NOT NULL DEFAULT '',
		document_number TEXT NOT NULL DEFAULT '',
		password        TEXT NOT NULL DEFAULT '',
		role            TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'ACTIVE',
		institution_id  TEXT NOT NULL DEFAULT '',
		permissions     TEXT[] NOT NULL DEFAULT '{}',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS users_status_role_idx ON users (status, role)`,
	`CREATE TABLE IF NOT EXISTS users_sedes (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL DEFAULT '',
		assignment_reason TEXT NOT NULL DEFAULT '',
		observations      TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT 'Activo',
		details           JSONB NOT NULL DEFAULT '[]',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS users_sedes_status_idx ON users_sedes (status)`,
}

// EnsureSchema creates the tables when they are missing. It never alters existing ones.
func EnsureSchema(ctx context.Context, db DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
