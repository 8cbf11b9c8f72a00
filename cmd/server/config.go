package main

import (
	"fmt"

	"github.com/phrazzld/trelloyes-api/internal/config"
)

// loadAppConfig loads the application configuration from the environment
// and an optional .env file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
