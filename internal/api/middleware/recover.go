package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/trelloyes-api/internal/api/shared"
	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
	"github.com/phrazzld/trelloyes-api/internal/redact"
)

// Recoverer turns a panic in a downstream handler into a 500. With detailed
// set the panic value is included in the body.
func Recoverer(detailed bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// ALLOW-PANIC: net/http relies on this sentinel to abort the connection
					panic(rec)
				}

				logger.FromContext(r.Context()).Error("panic recovered",
					"panic", redact.String(fmt.Sprint(rec)),
					"stack", redact.String(string(debug.Stack())))
				shared.RespondWithInternalError(w, r, fmt.Errorf("panic: %v", rec), detailed)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
