// Package main implements the entry point for the trelloyes API server,
// which manages cards and the lists that reference them.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("trelloyes-api: %v", err)
	}
}

// run loads configuration, sets up logging, wires the application and
// serves HTTP until a shutdown signal arrives or ctx is canceled.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("env", cfg.Server.Env),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("base_url", cfg.Server.BaseURL))

	app, err := newApplication(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
