package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file without overriding ones already
// set. The path comes from ENV_PATH, falling back to defaultPath. A missing
// file is only an error when env is "local" or empty.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("Loaded .env file", "path", envPath)
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) && env != "local" && env != "" {
		slog.Debug("No .env file, using process environment", "path", envPath)
		return nil
	}

	return fmt.Errorf("failed to load %s: %w", envPath, err)
}
