package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/redmonkez12/bookmarks-api/internal/httputil"
	"github.com/redmonkez12/bookmarks-api/internal/user"
)

// Middleware guards protected routes. Requests are rejected before any
// business logic runs; on success the resolved user rides on the context.
type Middleware struct {
	tokens TokenService
	users  user.Store
}

func NewMiddleware(tokens TokenService, users user.Store) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// RequireAuth validates the bearer token and re-resolves the subject.
// Re-resolution guards against tokens issued for a since-deleted user.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.RespondErrorWithCode(w, "invalid authorization header format", httputil.CodeInvalidAuthHeader, http.StatusUnauthorized)
			return
		}

		claims, err := m.tokens.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				httputil.RespondErrorWithCode(w, "token has expired", httputil.CodeTokenExpired, http.StatusUnauthorized)
				return
			}
			httputil.RespondErrorWithCode(w, "invalid token", httputil.CodeInvalidToken, http.StatusUnauthorized)
			return
		}

		currentUser, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			// deleted after issuance: the token no longer names anyone
			if errors.Is(err, user.ErrNotFound) {
				httputil.RespondErrorWithCode(w, "unknown user", httputil.CodeUnknownUser, http.StatusUnauthorized)
				return
			}
			// a store failure says nothing about the token
			httputil.RespondErrorWithCode(w, "failed to resolve user", httputil.CodeInternalError, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(user.NewContext(r.Context(), currentUser)))
	})
}
