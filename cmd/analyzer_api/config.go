package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/server"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols/factory"
	"github.com/DjordjeVuckovic/faroese-analyzer/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AnalyzerConfig struct {
	Server        *server.Config
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*AnalyzerConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/analyzer_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration from environment", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load symbol table configuration from environment", "error", err)
		return nil, err
	}

	return &AnalyzerConfig{
		Server:        serverCfg,
		StorageConfig: *storageCfg,
	}, nil
}
