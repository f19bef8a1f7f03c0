// Package profile, HTTP handlers for the health profile endpoints. Both
// routes sit behind the auth middleware, so the owning user is always the
// resolved identity from the request context.
package profile

import (
	"encoding/json"
	"net/http"

	"github.com/user/healthcoach-go/apperror"
	"github.com/user/healthcoach-go/auth"
)

// Handlers provides HTTP handlers for health profile management.
type Handlers struct {
	service *Service
}

// NewHandlers creates new Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleUpsert godoc
// @Summary Create or update the health profile
// @Description Stores the authenticated user's health profile, replacing every field on resubmission.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileBody body profile.UpsertRequest true "Health profile fields"
// @Success 200 {object} profile.UpsertResponse "Stored profile with created/updated indicator"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid, expired or missing token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/profile/health [post]
func (h *Handlers) HandleUpsert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("no authenticated user in context", nil))
			return
		}

		var req UpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Upsert(r.Context(), user.ID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// HandleGet godoc
// @Summary Get the health profile
// @Description Returns the authenticated user's stored health profile.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profile.HealthProfile "Stored profile"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid, expired or missing token"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - No profile submitted yet"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/profile/health [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("no authenticated user in context", nil))
			return
		}

		p, err := h.service.Get(r.Context(), user.ID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(p)
	}
}
