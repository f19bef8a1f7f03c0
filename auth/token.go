// Package auth, as part of the authentication module.
// This file implements issuance and verification of the signed, time-limited
// access tokens that authenticate every protected request. Tokens are
// self-contained JWTs: nothing is persisted and nothing can be revoked before
// its embedded expiration.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/healthcoach-go/config"
)

// Verification failure kinds. Callers treat any of them as unauthenticated,
// but they remain distinguishable with errors.Is for logging and tests.
var (
	// ErrTokenExpired means the token parsed and its signature checked out,
	// but its expiration instant has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenSignature means the signature does not match the configured
	// secret and algorithm.
	ErrTokenSignature = errors.New("token signature is invalid")
	// ErrTokenMalformed means the token could not be parsed at all, or its
	// claims are not shaped as expected.
	ErrTokenMalformed = errors.New("token is malformed")
)

// accessClaims is the claim set embedded in issued tokens. The registered
// Subject claim carries the user id; no custom claims are needed beyond it.
type accessClaims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed access tokens. The secret key and
// the HS256 signing algorithm are process-wide configuration, fixed at
// startup.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.AccessTokenDuration,
	}
}

// Issue mints a signed token whose subject is the given user id, expiring at
// now + the configured token lifetime. It returns the serialized token and
// its expiration instant.
func (s *TokenService) Issue(subjectID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := &accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "healthcoach",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Verify parses and validates a token string and returns the subject user id.
// Failures are reported as ErrTokenExpired, ErrTokenSignature or
// ErrTokenMalformed; all of them mean the caller is unauthenticated.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenSignature
		default:
			return "", fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
	}

	if !token.Valid {
		return "", ErrTokenMalformed
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject claim", ErrTokenMalformed)
	}
	return claims.Subject, nil
}
