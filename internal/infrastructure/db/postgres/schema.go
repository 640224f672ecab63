package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

var requiredTables = []string{"users", "todos", "address"}

// EnsureSchema applies the embedded schema when the required tables are
// missing. The SQL uses IF NOT EXISTS throughout, so re-running is safe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	exists, err := hasAllRequiredTables(ctx, pool)
	if err != nil {
		return fmt.Errorf("check existing tables: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func hasAllRequiredTables(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var count int
	err := pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name = ANY($1)
	`, requiredTables).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == len(requiredTables), nil
}
