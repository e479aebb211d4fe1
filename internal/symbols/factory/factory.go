package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols/pg"
	pkgserver "github.com/DjordjeVuckovic/faroese-analyzer/pkg/server"
)

// Storage bundles a symbol table with its health check and cleanup.
type Storage struct {
	Table         symbols.Table
	HealthChecker pkgserver.HealthChecker
	Close         func()
}

// NewTable creates the symbol table configured by cfg. When cfg.ResetOnStart
// is set the table is emptied before it is returned.
func NewTable(ctx context.Context, cfg StorageConfig) (*Storage, error) {
	var s *Storage

	switch cfg.Type {
	case symbols.InMem:
		s = &Storage{
			Table:         symbols.NewMemoryTable(),
			HealthChecker: pkgserver.NewOkHealthChecker(),
			Close:         func() {},
		}

	case symbols.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration for %s storage", cfg.Type)
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		table := pg.NewTable(pool)
		if err := table.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}

		s = &Storage{
			Table:         table,
			HealthChecker: pg.NewHealthChecker(pool),
			Close:         pool.Close,
		}

	default:
		return nil, fmt.Errorf(string(symbols.ErrUnsupportedStorage), cfg.Type)
	}

	if cfg.ResetOnStart {
		if err := s.Table.Reset(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to reset symbol table: %w", err)
		}
		slog.Info("Symbol table reset", "storage", cfg.Type)
	}

	return s, nil
}
