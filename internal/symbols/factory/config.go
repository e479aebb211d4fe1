package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols/pg"
)

type StorageConfig struct {
	symbols.Type
	Pg           *pg.PoolConfig
	ResetOnStart bool
}

func LoadEnv() (*StorageConfig, error) {
	storageType := symbols.Type(os.Getenv("SYMBOLS_STORAGE"))
	if storageType == "" {
		slog.Debug("SYMBOLS_STORAGE is not set, using in-memory symbol table")
		storageType = symbols.InMem
	}
	if storageType != symbols.InMem && storageType != symbols.PG {
		slog.Error("Invalid SYMBOLS_STORAGE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid SYMBOLS_STORAGE environment variable value: %s, expected one of %v",
			storageType,
			[]symbols.Type{symbols.InMem, symbols.PG})
	}

	resetOnStart := true
	if v := os.Getenv("SYMBOLS_RESET_ON_START"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SYMBOLS_RESET_ON_START value %q: %w", v, err)
		}
		resetOnStart = parsed
	}

	var pgCfg *pg.PoolConfig
	if storageType == symbols.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			maxConns, err := strconv.ParseInt(v, 10, 32)
			if err != nil || maxConns < 1 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value %q: must be a positive integer", v)
			}
			pgCfg.MaxConns = int32(maxConns)
		}
	}

	return &StorageConfig{
		Type:         storageType,
		Pg:           pgCfg,
		ResetOnStart: resetOnStart,
	}, nil
}
