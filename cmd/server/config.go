package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/periodic-api/internal/config"
	"github.com/phrazzld/periodic-api/internal/platform/logger"
)

// loadAppConfig loads configuration from dir and the environment.
func loadAppConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger installs the configured logger as the slog default.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("catalog_mode", cfg.Catalog.Mode),
		slog.Int("catalog_precision", cfg.Catalog.Precision))
	if cfg.Database.URL != "" {
		l.Debug("Database configuration", slog.Bool("url_present", true))
	}
	return l, nil
}
