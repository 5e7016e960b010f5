package auth

import (
	"log/slog"
	"net/http"
	"strings"
)

type ServiceAPI interface {
	ResolveToken(tokenString string) (*User, error)
}

// Middleware authenticates the request's bearer token and stores the
// resolved user in the request context.
func Middleware(svc ServiceAPI, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			u, err := svc.ResolveToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Warn("token rejected", "error", err)
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), u)))
		})
	}
}

// RequireUserAdmin guards the user management routes: the authenticated
// user's role must carry the user_admin permission.
func RequireUserAdmin(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok || u == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if !u.IsUserAdmin() {
				logger.Warn("access denied: user lacks user_admin permission",
					"user_id", u.ID,
					"permissions", u.Permissions)
				http.Error(w, "forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
