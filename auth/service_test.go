package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/user/healthcoach-go/apperror"
)

// memUserStore is an in-memory UserStore for tests. CreateUser is an atomic
// insert-if-absent under a mutex, mirroring the uniqueness guarantee the
// database constraint provides in production.
type memUserStore struct {
	mu      sync.Mutex
	byEmail map[string]*User
	byID    map[string]*User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{
		byEmail: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

func (s *memUserStore) CreateUser(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[user.Email]; exists {
		return ErrDuplicateEmail
	}
	stored := *user
	s.byEmail[stored.Email] = &stored
	s.byID[stored.ID] = &stored
	return nil
}

func (s *memUserStore) GetUserByEmail(_ context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (s *memUserStore) GetUserByID(_ context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func newTestAuthService() *AuthService {
	return NewAuthService(newMemUserStore(), newTestTokenService("test-secret", time.Hour))
}

func TestRegisterThenLogin_SameIdentity(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Email: "a@x.com", Password: "p1", Name: "Ann", Age: 30, Gender: "f",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.AccessToken == "" {
		t.Fatalf("expected access token on registration")
	}
	if registered.User.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if registered.TokenType != "bearer" {
		t.Fatalf("token_type=%q, want bearer", registered.TokenType)
	}

	loggedIn, err := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "p1"})
	if err != nil {
		t.Fatalf("Login after Register: %v", err)
	}
	if loggedIn.User.ID != registered.User.ID {
		t.Fatalf("login returned id %q, registration returned %q", loggedIn.User.ID, registered.User.ID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "p1", Name: "Ann"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "p2", Name: "Other"})
	if err == nil {
		t.Fatalf("expected duplicate email failure")
	}
	if !apperror.IsBadRequest(err) {
		t.Fatalf("duplicate email error=%v, want bad-request classification", err)
	}
}

func TestLogin_FailuresIndistinguishable(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "p1", Name: "Ann"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "wrong"})
	_, unknownEmail := svc.Login(ctx, LoginRequest{Email: "nobody@x.com", Password: "p1"})

	if wrongPassword == nil || unknownEmail == nil {
		t.Fatalf("expected both logins to fail")
	}

	wpErr, ok := apperror.FromError(wrongPassword)
	if !ok {
		t.Fatalf("wrong-password error is not an AppError: %v", wrongPassword)
	}
	ueErr, ok := apperror.FromError(unknownEmail)
	if !ok {
		t.Fatalf("unknown-email error is not an AppError: %v", unknownEmail)
	}

	// Both the classification and the message must be identical so the
	// response never reveals which part of the credentials was wrong.
	if wpErr.Type != ueErr.Type || wpErr.StatusCode() != ueErr.StatusCode() {
		t.Fatalf("failure classifications differ: %v vs %v", wpErr.Type, ueErr.Type)
	}
	if wpErr.Message != ueErr.Message {
		t.Fatalf("failure messages differ: %q vs %q", wpErr.Message, ueErr.Message)
	}
}

func TestRegister_ConcurrentSameEmail_OneWinner(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, RegisterRequest{
				Email: "race@x.com", Password: "p1", Name: "Ann",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", successes)
	}
}

func TestGetUserByID_Missing(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.GetUserByID(context.Background(), "no-such-id")
	if !apperror.IsAuthError(err) {
		t.Fatalf("GetUserByID error=%v, want auth classification", err)
	}
}
