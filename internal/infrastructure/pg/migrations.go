package pg

import (
	"context"
	"fmt"
)

const createOperationsTable = `
CREATE TABLE IF NOT EXISTS phi_operations (
	id         SERIAL PRIMARY KEY,
	kind       VARCHAR(32) NOT NULL,
	params     TEXT NOT NULL,
	result     TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS phi_operations_created_at_idx ON phi_operations (created_at DESC);
`

// Migrate создаёт таблицу phi_operations, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, createOperationsTable); err != nil {
		return fmt.Errorf("pg migrate: %w", err)
	}
	return nil
}
