package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/oauth"
)

// Authenticated validates the bearer token and exposes its claims on the
// request context.
func Authenticated(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return chi.Chain(oauth.Authorize(secret, nil)).Handler(next)
	}
}

// UserID extracts the authenticated user id claim; "0" when anonymous.
func UserID(r *http.Request) string {
	claims, ok := r.Context().Value(oauth.ClaimsContext).(map[string]string)
	if !ok {
		return "0"
	}
	if id, ok := claims["user_id"]; ok && id != "" {
		return id
	}
	return "0"
}
