package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common/security"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey   contextKey = "userID"
	UsernameCtxKey contextKey = "username"
	UserRoleCtxKey contextKey = "userRole"
)

// TokenFromHeader reads the raw Authorization header. Clients of the
// original API send the bare token rather than the standard
// "Bearer <token>" scheme; both forms are accepted here.
func TokenFromHeader(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return header
}

// Authenticator rejects requests whose token failed verification. A
// missing credential yields 401, an invalid or malformed one 403, both
// with empty bodies. Claims are attached to the request context on
// success.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil {
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				w.WriteHeader(http.StatusUnauthorized)
			} else {
				w.WriteHeader(http.StatusForbidden)
			}
			return
		}

		if token == nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		userID, err := security.GetUserIDFromClaims(claims)
		if err != nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		username, err := security.GetUsernameFromClaims(claims)
		if err != nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		userRole, err := security.GetUserRoleFromClaims(claims)
		if err != nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, UsernameCtxKey, username)
		ctx = context.WithValue(ctx, UserRoleCtxKey, userRole)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to get user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// Helper to get username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// Helper to get user role from context
func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	userRole, ok := ctx.Value(UserRoleCtxKey).(string)
	return userRole, ok
}
