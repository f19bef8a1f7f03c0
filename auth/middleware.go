// Package auth, as part of the authentication module.
// This file defines the HTTP middleware that guards protected routes. It is
// the single authorization gate of the service: it extracts the bearer
// credential, verifies the token, resolves the subject to a stored user and
// places that user in the request context. Handlers behind it receive a
// resolved identity and perform no further permission checks.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/user/healthcoach-go/apperror"
)

// Middleware returns the JWT authentication middleware. A request fails with
// 401 before reaching any handler when the Authorization header is absent or
// malformed, when the token does not verify, or when the token's subject no
// longer resolves to an existing user (a structurally valid token whose
// identity was deleted after issuance).
func Middleware(service *AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("Authorization header is missing", nil))
				return
			}

			// The Authorization header must be in the form "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, r, apperror.NewAuthError("Authorization header format must be Bearer {token}", nil))
				return
			}

			subjectID, err := service.tokens.Verify(parts[1])
			if err != nil {
				// Expired, bad signature and malformed all reject identically;
				// the message distinguishes them for clients and logs.
				switch {
				case errors.Is(err, ErrTokenExpired):
					WriteError(w, r, apperror.NewAuthError("token has expired", err))
				case errors.Is(err, ErrTokenSignature):
					WriteError(w, r, apperror.NewAuthError("invalid token signature", err))
				default:
					WriteError(w, r, apperror.NewAuthError("invalid authentication credentials", err))
				}
				return
			}

			user, err := service.GetUserByID(r.Context(), subjectID)
			if err != nil {
				WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithUser(r.Context(), user)))
		})
	}
}
