package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/trelloyes-api/internal/config"
	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
)

// setupAppLogger configures the process-wide logger from config. The returned
// function closes the log file, if any.
func setupAppLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	l, cleanup, err := logger.Setup(logger.LoggerConfig{
		Level:      cfg.Server.LogLevel,
		Production: cfg.Server.IsProduction(),
		FilePath:   cfg.Server.LogFile,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return l, cleanup, nil
}
