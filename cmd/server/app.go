package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/trelloyes-api/internal/config"
	"github.com/phrazzld/trelloyes-api/internal/platform/memory"
	"github.com/phrazzld/trelloyes-api/internal/redact"
	"github.com/phrazzld/trelloyes-api/internal/service"
)

// application holds the shared dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger

	store *memory.Store

	cardService service.CardService
	listService service.ListService
}

// newApplication wires the store and services. The store is created here and
// shared by both services so that cascades and reference checks see the same
// data.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	// the token must never show up in logs
	redact.RegisterSecret(cfg.Auth.APIToken)

	app := &application{
		config: cfg,
		logger: logger,
		store:  memory.NewStore(logger),
	}

	locator := service.NewLocator(cfg.Server.BaseURL)

	var err error
	app.cardService, err = service.NewCardService(app.store, locator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	app.listService, err = service.NewListService(app.store, locator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create list service: %w", err)
	}

	logger.Info("application initialized", slog.Bool("production", cfg.Server.IsProduction()))
	return app, nil
}

// cleanup logs the final state of the store. Nothing is persisted.
func (app *application) cleanup() {
	cards, lists := app.store.Counts()
	app.logger.Info("discarding in-memory data",
		slog.Int("cards", cards),
		slog.Int("lists", lists))
}
