// Package auth, as part of the authentication module.
// This file handles HTTP requests for registration, login and the current
// identity endpoint. It is the controller layer: decode, validate, delegate
// to the service, encode.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/healthcoach-go/apperror"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user and returns an access token with the public user view.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.AuthResponse "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input or email already registered"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Email == "" || req.Password == "" || req.Name == "" {
			WriteError(w, r, apperror.NewBadRequestError("email, password, and name are required", nil))
			return
		}

		resp, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Logs in an existing user and returns an access token with the public user view.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.AuthResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input or invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Email == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("email and password are required", nil))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleMe godoc
// @Summary Get current identity
// @Description Returns the public view of the authenticated user.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.UserResponse "Current user"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid, expired or missing token"
// @Router /api/auth/me [get]
func (h *Handlers) HandleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			WriteError(w, r, apperror.NewAuthError("no authenticated user in context", nil))
			return
		}
		writeJSON(w, http.StatusOK, user.Public())
	}
}

// writeJSON serializes data to JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError writes a standardized error response using the apperror system.
// Errors that are not already *apperror.AppError are wrapped as internal
// errors so every failure leaves the API with the same JSON shape.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred: "+err.Error(), err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
