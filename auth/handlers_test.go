package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestHandleRegister(t *testing.T) {
	h := NewHandlers(newTestAuthService())

	rr := postJSON(t, h.HandleRegister(), "/api/auth/register",
		`{"email":"a@x.com","password":"p1","name":"Ann","age":30,"gender":"f"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d, want 201, body=%s", rr.Code, rr.Body.String())
	}

	var resp AuthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatalf("expected access token in response")
	}
	if resp.User.Email != "a@x.com" || resp.User.Name != "Ann" || resp.User.Age != 30 {
		t.Fatalf("unexpected user view: %+v", resp.User)
	}
	// The public view must never carry the password hash in any key.
	if strings.Contains(rr.Body.String(), "password") {
		t.Fatalf("response leaks a password field: %s", rr.Body.String())
	}

	// Same email again: duplicate-email failure with 400.
	rr = postJSON(t, h.HandleRegister(), "/api/auth/register",
		`{"email":"a@x.com","password":"p2","name":"Bob","age":40,"gender":"m"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status=%d, want 400", rr.Code)
	}
}

func TestHandleRegister_Invalid(t *testing.T) {
	h := NewHandlers(newTestAuthService())

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{{{`},
		{name: "missing email", body: `{"password":"p1","name":"Ann"}`},
		{name: "missing password", body: `{"email":"a@x.com","name":"Ann"}`},
		{name: "missing name", body: `{"email":"a@x.com","password":"p1"}`},
	}

	for _, tc := range tests {
		rr := postJSON(t, h.HandleRegister(), "/api/auth/register", tc.body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d, want 400", tc.name, rr.Code)
		}
	}
}

func TestHandleLogin(t *testing.T) {
	svc := newTestAuthService()
	h := NewHandlers(svc)

	if _, err := svc.Register(context.Background(), RegisterRequest{
		Email: "a@x.com", Password: "p1", Name: "Ann",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	rr := postJSON(t, h.HandleLogin(), "/api/auth/login", `{"email":"a@x.com","password":"p1"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200, body=%s", rr.Code, rr.Body.String())
	}

	// Wrong password and unknown email must be byte-identical failures.
	wrongPassword := postJSON(t, h.HandleLogin(), "/api/auth/login", `{"email":"a@x.com","password":"nope"}`)
	unknownEmail := postJSON(t, h.HandleLogin(), "/api/auth/login", `{"email":"nobody@x.com","password":"p1"}`)

	if wrongPassword.Code != http.StatusBadRequest || unknownEmail.Code != http.StatusBadRequest {
		t.Fatalf("failure statuses=%d/%d, want 400/400", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("failure bodies differ: %s vs %s", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestHandleMe(t *testing.T) {
	svc := newTestAuthService()
	h := NewHandlers(svc)

	registered, err := svc.Register(context.Background(), RegisterRequest{
		Email: "a@x.com", Password: "p1", Name: "Ann", Age: 30, Gender: "f",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	user, err := svc.GetUserByID(context.Background(), registered.User.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(NewContextWithUser(req.Context(), user))
	rr := httptest.NewRecorder()
	h.HandleMe()(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", rr.Code)
	}
	var view UserResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.ID != registered.User.ID || view.Email != "a@x.com" {
		t.Fatalf("unexpected identity: %+v", view)
	}
}
