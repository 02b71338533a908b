package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/common/security"
	"jobboard/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

func newGuardedRouter(t *testing.T, tokens *security.TokenService, requiredRole string) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(tokens.Auth()))
	r.Use(Authenticator)
	r.Use(RequireRole(requiredRole))
	r.Get("/guarded", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserIDFromContext(r.Context())
		w.Write([]byte(userID))
	})
	return r
}

func doRequest(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestMissingTokenIsBare401(t *testing.T) {
	tokens := security.NewTokenService([]byte("test-secret"), 24*time.Hour)
	handler := newGuardedRouter(t, tokens, model.RoleEmployer)

	w := doRequest(handler, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("auth failures must have empty bodies, got %q", w.Body.String())
	}
}

func TestGarbageTokenIsBare401(t *testing.T) {
	tokens := security.NewTokenService([]byte("test-secret"), 24*time.Hour)
	handler := newGuardedRouter(t, tokens, model.RoleEmployer)

	w := doRequest(handler, "not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("auth failures must have empty bodies, got %q", w.Body.String())
	}
}

func TestExpiredTokenIsBare401(t *testing.T) {
	tokens := security.NewTokenService([]byte("test-secret"), -time.Hour)
	handler := newGuardedRouter(t, tokens, model.RoleEmployer)

	token, err := tokens.Issue("user-1", model.RoleEmployer)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	w := doRequest(handler, token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestNoRoleHierarchy(t *testing.T) {
	tokens := security.NewTokenService([]byte("test-secret"), 24*time.Hour)

	employerToken, err := tokens.Issue("employer-1", model.RoleEmployer)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	adminToken, err := tokens.Issue("admin-1", model.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	adminGate := newGuardedRouter(t, tokens, model.RoleAdmin)
	employerGate := newGuardedRouter(t, tokens, model.RoleEmployer)

	// Matching roles pass.
	if w := doRequest(adminGate, adminToken); w.Code != http.StatusOK {
		t.Errorf("admin at admin gate: status = %d, want 200", w.Code)
	}
	if w := doRequest(employerGate, employerToken); w.Code != http.StatusOK {
		t.Errorf("employer at employer gate: status = %d, want 200", w.Code)
	}

	// Cross-role is a bare 403 in both directions: ADMIN does not
	// outrank EMPLOYER here.
	w := doRequest(adminGate, employerToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("employer at admin gate: status = %d, want 403", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("role failures must have empty bodies, got %q", w.Body.String())
	}
	if w := doRequest(employerGate, adminToken); w.Code != http.StatusForbidden {
		t.Errorf("admin at employer gate: status = %d, want 403", w.Code)
	}
}

func TestAuthenticatorAttachesIdentity(t *testing.T) {
	tokens := security.NewTokenService([]byte("test-secret"), 24*time.Hour)
	handler := newGuardedRouter(t, tokens, model.RoleEmployer)

	token, err := tokens.Issue("employer-42", model.RoleEmployer)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	w := doRequest(handler, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "employer-42" {
		t.Errorf("handler saw user %q, want employer-42", w.Body.String())
	}
}
