package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/trelloyes-api/internal/api/shared"
	"github.com/phrazzld/trelloyes-api/internal/domain"
	"github.com/phrazzld/trelloyes-api/internal/store"
)

// Client-facing messages.
const (
	MsgCardNotFound   = "Card Not Found"
	MsgListNotFound   = "List Not Found"
	MsgInvalidRequest = "Invalid request format"
	invalidDataPrefix = "Invalid data, "
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so that
// internal error types never reach clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrCardNotFound),
		errors.Is(err, store.ErrListNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message a client may see for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return shared.ServerErrorMessage
	}

	var verr *domain.ValidationError
	switch {
	case errors.Is(err, store.ErrCardNotFound):
		return MsgCardNotFound
	case errors.Is(err, store.ErrListNotFound):
		return MsgListNotFound
	case errors.As(err, &verr):
		return invalidDataPrefix + verr.Message
	case errors.Is(err, domain.ErrValidation):
		return invalidDataPrefix + "request failed validation"
	default:
		return shared.ServerErrorMessage
	}
}

// respondWithServiceError translates a service error into a response. 5xx
// bodies follow the production or development shape depending on detailed.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, detailed bool) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		shared.RespondWithInternalError(w, r, err, detailed)
		return
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
