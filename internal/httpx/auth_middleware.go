package httpx

import (
	"net/http"
	"strings"

	"bookshelf/internal/platform/crypto"
)

// AuthMiddleware accepts requests carrying a valid "Bearer <token>" header and
// stores the token subject as the user ID in the request context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
				return
			}

			claims, err := crypto.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil || claims.Sub == "" {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), claims.Sub)))
		})
	}
}
