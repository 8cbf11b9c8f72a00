package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/trelloyes-api/internal/api/shared"
	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
	"github.com/phrazzld/trelloyes-api/internal/service"
)

// CardHandler handles card-related HTTP requests
type CardHandler struct {
	cardService    service.CardService
	logger         *slog.Logger
	detailedErrors bool
}

// NewCardHandler creates a new CardHandler. With detailedErrors set, 500
// responses carry the error text.
func NewCardHandler(cardService service.CardService, logger *slog.Logger, detailedErrors bool) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardService:    cardService,
		logger:         logger,
		detailedErrors: detailedErrors,
	}
}

// ListCards handles GET /card
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardService.ListCards(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, h.detailedErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// GetCard handles GET /card/{id}
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.cardService.GetCard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err, h.detailedErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// CreateCard handles POST /card
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "card_handler")

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err,
			shared.WithElevatedLogLevel())
		return
	}

	card, location, err := h.cardService.CreateCard(r.Context(), req.Title, req.Content)
	if err != nil {
		respondWithServiceError(w, r, err, h.detailedErrors)
		return
	}

	log.Debug("card created via API", slog.String("card_id", card.ID))
	w.Header().Set("Location", location)
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// DeleteCard handles DELETE /card/{id}. The card is also removed from every
// list that references it.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	if err := h.cardService.DeleteCard(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err, h.detailedErrors)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
