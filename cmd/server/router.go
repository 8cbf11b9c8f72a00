package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/trelloyes-api/internal/api"
	apiMiddleware "github.com/phrazzld/trelloyes-api/internal/api/middleware"
	"github.com/phrazzld/trelloyes-api/internal/api/shared"
)

const greeting = "Hello, trelloyes!"

// setupRouter creates the router with all middleware and routes.
func (app *application) setupRouter() http.Handler {
	cfg := app.config.Server
	detailedErrors := !cfg.IsProduction()

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.LoggerMiddleware(app.logger))
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RequestLogger)
	r.Use(apiMiddleware.Recoverer(detailedErrors))
	r.Use(apiMiddleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Location", apiMiddleware.TraceIDHeader},
		MaxAge:         300,
	}))
	if cfg.RateLimitRPS > 0 {
		r.Use(apiMiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Limit)
	}

	cardHandler := api.NewCardHandler(app.cardService, app.logger, detailedErrors)
	listHandler := api.NewListHandler(app.listService, app.logger, detailedErrors)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.config.Auth.APIToken)

	// Public endpoints
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithText(w, http.StatusOK, greeting)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithText(w, http.StatusOK, "OK")
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/card", func(r chi.Router) {
			r.Get("/", cardHandler.ListCards)
			r.Post("/", cardHandler.CreateCard)
			r.Get("/{id}", cardHandler.GetCard)
			r.Delete("/{id}", cardHandler.DeleteCard)
		})

		r.Route("/list", func(r chi.Router) {
			r.Get("/", listHandler.ListLists)
			r.Post("/", listHandler.CreateList)
			r.Get("/{id}", listHandler.GetList)
			r.Delete("/{id}", listHandler.DeleteList)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}
