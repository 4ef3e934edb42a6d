package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"inkwell/app/auth"
	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/gorilla/mux"
)

type contextKey int

const userContextKey contextKey = iota

// Authenticate verifies the bearer token on every protected request
// and injects the resolved user into the request context. Missing,
// invalid or expired tokens fail with 401.
func Authenticate(tokens *auth.Tokens, users repositories.UserRepository) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeMessage(w, http.StatusUnauthorized, "not authenticated: missing bearer token")
				return
			}

			claims, err := tokens.Verify(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "not authenticated: invalid or expired token")
				return
			}

			// The admin flag is re-read from the stored record, not the
			// token, so a revoked admin loses access immediately.
			user, err := users.GetByID(claims.UserID)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "not authenticated: unknown user")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects authenticated callers whose admin flag is false.
// It must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r.Context())
		if user == nil {
			writeMessage(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		if !user.IsAdmin {
			writeMessage(w, http.StatusForbidden, "not authorized: admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the authenticated user stored in the request
// context, or nil outside a protected route.
func CurrentUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
