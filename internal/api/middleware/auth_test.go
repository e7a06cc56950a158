package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/common/security"
	"github.com/haritejakathi/The-Reciprocal-Solutions/internal/platform/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

func setupTestRouter() http.Handler {
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: time.Hour,
	}
	security.InitJWT()

	r := chi.NewRouter()
	r.Use(jwtauth.Verify(security.TokenAuth, TokenFromHeader))
	r.Use(Authenticator)
	r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserIDFromContext(r.Context())
		w.Write([]byte(userID))
	})
	return r
}

func TestAuthenticator(t *testing.T) {
	router := setupTestRouter()

	validToken, err := security.GenerateToken("user-1", "alice", "user")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "",
		},
		{
			name:           "garbage token",
			authHeader:     "not-a-valid-token",
			expectedStatus: http.StatusForbidden,
			expectedBody:   "",
		},
		{
			name:           "tampered token",
			authHeader:     validToken[:len(validToken)-2] + "xx",
			expectedStatus: http.StatusForbidden,
			expectedBody:   "",
		},
		{
			name:           "valid raw token",
			authHeader:     validToken,
			expectedStatus: http.StatusOK,
			expectedBody:   "user-1",
		},
		{
			name:           "valid token with bearer prefix",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectedBody:   "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.expectedStatus)
			}
			body, _ := io.ReadAll(rec.Body)
			if string(body) != tt.expectedBody {
				t.Errorf("body = %q, want %q", string(body), tt.expectedBody)
			}
		})
	}
}

func TestAuthenticator_ClaimsInContext(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: []byte("test-secret"), JWTExp: time.Hour}
	security.InitJWT()

	token, err := security.GenerateToken("user-9", "bob", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	r := chi.NewRouter()
	r.Use(jwtauth.Verify(security.TokenAuth, TokenFromHeader))
	r.Use(Authenticator)
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		username, _ := GetUsernameFromContext(r.Context())
		role, _ := GetUserRoleFromContext(r.Context())
		w.Write([]byte(username + ":" + role))
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "bob:admin" {
		t.Errorf("claims = %q, want %q", got, "bob:admin")
	}
}
