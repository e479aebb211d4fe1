// Package main Faroese Analyzer API
// @title Faroese Analyzer API
// @version 1.0
// @description Lexer and grammar checker for a small Faroese sentence language
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	_ "github.com/DjordjeVuckovic/faroese-analyzer/docs"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/analysis"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/router"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/server"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/symbols/factory"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.Server.LogLevel)

	s := server.New(cfg.Server, nil)

	storage, err := factory.NewTable(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create symbol table", "storage", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	defer storage.Close()
	slog.Info("Symbol table ready", "storage", cfg.StorageConfig.Type)

	s = s.WithHealthChecker(storage.HealthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Faroese Analyzer API is running")
	})

	service := analysis.NewService(storage.Table)
	router.NewAnalyzeRouter(s.Echo, service).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		storage.Close()
		os.Exit(1)
	}
}
