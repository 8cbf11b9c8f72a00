package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/trelloyes-api/internal/api/shared"
	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
	"github.com/phrazzld/trelloyes-api/internal/service"
)

// ListHandler handles list-related HTTP requests
type ListHandler struct {
	listService    service.ListService
	logger         *slog.Logger
	detailedErrors bool
}

// NewListHandler creates a new ListHandler
func NewListHandler(listService service.ListService, logger *slog.Logger, detailedErrors bool) *ListHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ListHandler")
	}

	return &ListHandler{
		listService:    listService,
		logger:         logger,
		detailedErrors: detailedErrors,
	}
}

// ListLists handles GET /list
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.listService.ListLists(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, h.detailedErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listsToResponse(lists))
}

// GetList handles GET /list/{id}
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	list, err := h.listService.GetList(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err, h.detailedErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listToResponse(list))
}

// CreateList handles POST /list
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "list_handler")

	var req CreateListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err,
			shared.WithElevatedLogLevel())
		return
	}

	list, location, err := h.listService.CreateList(r.Context(), req.Header, req.CardIDs)
	if err != nil {
		respondWithServiceError(w, r, err, h.detailedErrors)
		return
	}

	log.Debug("list created via API", slog.String("list_id", list.ID))
	w.Header().Set("Location", location)
	shared.RespondWithJSON(w, r, http.StatusCreated, listToResponse(list))
}

// DeleteList handles DELETE /list/{id}
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	if err := h.listService.DeleteList(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err, h.detailedErrors)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
