package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
	"github.com/phrazzld/trelloyes-api/internal/redact"
)

// ServerErrorMessage is the only detail production clients see for a 500.
const ServerErrorMessage = "server error"

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// InternalErrorResponse is the production body for unexpected failures.
type InternalErrorResponse struct {
	Error   InternalErrorDetail `json:"error"`
	TraceID string              `json:"trace_id,omitempty"`
}

// InternalErrorDetail carries the generic message of an InternalErrorResponse.
type InternalErrorDetail struct {
	Message string `json:"message"`
}

// DebugErrorResponse is the development body for unexpected failures.
type DebugErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel raises 4xx errors to ERROR level instead of DEBUG.
// Rejected tokens and undecodable bodies use it so they show up at the
// production log level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		requestLogger(r).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithText writes a plain text body.
func RespondWithText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	requestLogger(r).Debug("sending error response",
		"status_code", status,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes a JSON error response and logs the redacted
// error. Only userMessage reaches the client.
//
// Log level strategy:
// - 5xx errors: ERROR
// - 429 Too Many Requests: WARN
// - other 4xx: DEBUG, or ERROR with WithElevatedLogLevel
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status == http.StatusTooManyRequests:
		logLevel = slog.LevelWarn
	case responseOpts.elevateLogLevel && status >= http.StatusBadRequest:
		logLevel = slog.LevelError
	}

	requestLogger(r).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithInternalError writes a 500. With detailed set the body carries
// the redacted error text; otherwise only ServerErrorMessage is sent. The
// full error is logged either way.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error, detailed bool) {
	traceID := GetTraceID(r.Context())
	message := ServerErrorMessage
	if err != nil {
		message = redact.Error(err)
	}

	requestLogger(r).LogAttrs(r.Context(), slog.LevelError, "internal server error",
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.String("error", message),
		slog.String("error_type", fmt.Sprintf("%T", err)))

	if detailed {
		RespondWithJSON(w, r, http.StatusInternalServerError, DebugErrorResponse{
			Message: message,
			Error:   fmt.Sprintf("%T: %s", err, message),
			TraceID: traceID,
		})
		return
	}

	RespondWithJSON(w, r, http.StatusInternalServerError, InternalErrorResponse{
		Error:   InternalErrorDetail{Message: ServerErrorMessage},
		TraceID: traceID,
	})
}

func requestLogger(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), slog.Default())
}
