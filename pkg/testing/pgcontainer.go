package testing

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const pgImage = "postgres:17.5"

// PGContainer is a disposable Postgres with every db/migrations up script applied.
type PGContainer struct {
	Container  *postgres.PostgresContainer
	ConnString string
}

type PGConfig struct {
	Database string
	Username string
	Password string
}

func DefaultPGConfig() PGConfig {
	return PGConfig{
		Database: "symbols_test_db",
		Username: "test",
		Password: "test",
	}
}

func NewPGContainer(ctx context.Context, cfg PGConfig) (*PGContainer, error) {
	scripts, err := migrationScripts()
	if err != nil {
		return nil, err
	}

	container, err := postgres.Run(ctx,
		pgImage,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		postgres.WithInitScripts(scripts...),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("failed to get connection string: %w", err),
			testcontainers.TerminateContainer(container),
		)
	}

	return &PGContainer{
		Container:  container,
		ConnString: connStr,
	}, nil
}

// NewPGContainerWithCleanup starts a container with DefaultPGConfig and
// terminates it when tb finishes.
func NewPGContainerWithCleanup(ctx context.Context, tb testing.TB) *PGContainer {
	tb.Helper()

	container, err := NewPGContainer(ctx, DefaultPGConfig())
	if err != nil {
		tb.Fatalf("failed to create postgres container: %v", err)
	}

	tb.Cleanup(func() {
		if err := container.Terminate(); err != nil {
			tb.Logf("failed to terminate postgres container: %v", err)
		}
	})

	return container
}

func (c *PGContainer) Terminate() error {
	return testcontainers.TerminateContainer(c.Container)
}

// migrationScripts returns the up scripts in apply order. The entrypoint runs
// init scripts by file name, so the numeric prefixes keep the order.
func migrationScripts() ([]string, error) {
	_, file, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(file), "..", "..", "db", "migrations")

	scripts, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to find migration files: %w", err)
	}
	if len(scripts) == 0 {
		return nil, fmt.Errorf("no migration files in %s", dir)
	}
	slices.Sort(scripts)

	return scripts, nil
}
