package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSymbolsTable = `
	CREATE TABLE IF NOT EXISTS symbols (
	    name       TEXT PRIMARY KEY,
	    value      TEXT NOT NULL,
	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// Table is a symbols.Table stored in Postgres, shared by every process that
// points at the same database.
type Table struct {
	db *pgxpool.Pool
}

func NewTable(pool *ConnectionPool) *Table {
	return &Table{db: pool.conn}
}

func (t *Table) EnsureSchema(ctx context.Context) error {
	if _, err := t.db.Exec(ctx, createSymbolsTable); err != nil {
		return fmt.Errorf("failed to create symbols table: %w", err)
	}
	return nil
}

func (t *Table) Assign(ctx context.Context, name, value string) error {
	cmd := `
        INSERT INTO symbols (name, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;
    `
	if _, err := t.db.Exec(ctx, cmd, name, value); err != nil {
		return fmt.Errorf("failed to assign symbol %q: %w", name, err)
	}
	slog.Debug("Symbol assigned", "name", name, "value", value, "storage", "pg")
	return nil
}

func (t *Table) Lookup(ctx context.Context, name string) (string, bool, error) {
	var value string
	err := t.db.QueryRow(ctx, `SELECT value FROM symbols WHERE name = $1`, name).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up symbol %q: %w", name, err)
	}
	return value, true, nil
}

func (t *Table) Snapshot(ctx context.Context) (map[string]string, error) {
	rows, err := t.db.Query(ctx, `SELECT name, value FROM symbols`)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		entries[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read symbols: %w", err)
	}

	return entries, nil
}

func (t *Table) Reset(ctx context.Context) error {
	if _, err := t.db.Exec(ctx, `TRUNCATE TABLE symbols`); err != nil {
		return fmt.Errorf("failed to reset symbols: %w", err)
	}
	return nil
}
