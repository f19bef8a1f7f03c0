// Package auth is responsible for handling authentication and authorization
// logic: user registration, login, token generation (JWT) and token
// validation.
package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/user/healthcoach-go/apperror"
)

// AuthService provides registration, login and identity lookup against the
// user store. Dependencies are injected via the constructor.
type AuthService struct {
	store  UserStore
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, tokens *TokenService) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
	}
}

// invalidCredentials is the single failure returned for every login problem.
// Unknown email and wrong password are deliberately indistinguishable so the
// response does not reveal which part was wrong.
func invalidCredentials() *apperror.AppError {
	return apperror.NewBadRequestError("invalid email or password", nil)
}

// Register creates a new user and returns the public user view together with
// a freshly issued access token.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &User{
		ID:             uuid.NewString(),
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperror.NewBadRequestError("email already registered", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	return s.authResponse(user)
}

// Login authenticates a user by email and password and returns the public
// user view together with a fresh access token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, invalidCredentials()
		}
		log.Printf("database error in Login when looking up %q: %v", req.Email, err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if !CheckPassword(req.Password, user.HashedPassword) {
		return nil, invalidCredentials()
	}

	return s.authResponse(user)
}

// GetUserByID resolves a user id to the stored user record. Used by the
// authentication middleware after token verification.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.NewAuthError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return user, nil
}

// authResponse issues a token for the user and assembles the response body
// shared by registration and login.
func (s *AuthService) authResponse(user *User) (*AuthResponse, error) {
	accessToken, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue access token", err)
	}
	return &AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user.Public(),
	}, nil
}
