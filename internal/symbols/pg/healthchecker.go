package pg

import (
	"context"
	"log/slog"
	"time"
)

const pingTimeout = 2 * time.Second

type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

// Healthy pings the symbol table database, giving up after pingTimeout.
func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := hc.pool.Ping(ctx); err != nil {
		slog.Warn("Symbol table database is unreachable", "error", err)
		return false
	}
	return true
}
