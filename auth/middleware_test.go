package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// protectedEcho is a handler that reports the resolved user's id, proving the
// middleware populated the context.
func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			t.Fatalf("handler reached without user in context")
		}
		w.Write([]byte(user.ID))
	})
}

func TestMiddleware_RejectsBeforeHandler(t *testing.T) {
	svc := newTestAuthService()
	handler := Middleware(svc)(protectedEcho(t))

	expiredToken, _, err := newTestTokenService("test-secret", -time.Minute).Issue("whoever")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	foreignToken, _, err := newTestTokenService("other-secret", time.Hour).Issue("whoever")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "no token", header: "Bearer"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: "Bearer " + expiredToken},
		{name: "wrong signature", header: "Bearer " + foreignToken},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status=%d, want 401", tc.name, rr.Code)
		}
	}
}

func TestMiddleware_ValidTokenUnknownUser(t *testing.T) {
	svc := newTestAuthService()
	handler := Middleware(svc)(protectedEcho(t))

	// Structurally valid token whose subject was never persisted: the token
	// verifies but the identity is gone.
	tok, _, err := svc.tokens.Issue("deleted-user")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", rr.Code)
	}
}

func TestMiddleware_ResolvesUser(t *testing.T) {
	svc := newTestAuthService()
	handler := Middleware(svc)(protectedEcho(t))

	registered, err := svc.Register(context.Background(), RegisterRequest{
		Email: "a@x.com", Password: "p1", Name: "Ann", Age: 30, Gender: "f",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+registered.AccessToken)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200, body=%s", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != registered.User.ID {
		t.Fatalf("resolved id=%q, want %q", rr.Body.String(), registered.User.ID)
	}
}
