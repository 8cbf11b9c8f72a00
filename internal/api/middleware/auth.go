package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/phrazzld/trelloyes-api/internal/api/shared"
	"github.com/phrazzld/trelloyes-api/internal/domain"
)

// UnauthorizedMessage is the body text of every rejected request.
const UnauthorizedMessage = "Unauthorized request"

// AuthMiddleware gates routes behind a single shared bearer token.
type AuthMiddleware struct {
	token []byte
}

// NewAuthMiddleware creates an AuthMiddleware accepting apiToken. An empty
// token rejects every request.
func NewAuthMiddleware(apiToken string) *AuthMiddleware {
	return &AuthMiddleware{token: []byte(apiToken)}
}

// Authenticate passes the request on only when its Authorization header is
// "Bearer <token>" with the configured token. Anything else gets a 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.authorized(r.Header.Get("Authorization")) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, UnauthorizedMessage,
				domain.ErrUnauthorized, shared.WithElevatedLogLevel())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) authorized(header string) bool {
	if len(m.token) == 0 || header == "" {
		return false
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), m.token) == 1
}
