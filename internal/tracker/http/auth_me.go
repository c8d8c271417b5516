package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jobtrack/jobtrack/internal/tracker/service"
	"github.com/jobtrack/jobtrack/pkg/httpx"
	"github.com/jobtrack/jobtrack/pkg/slogx"
)

// MeHandler serves GET /auth/me and PATCH /auth/me.
type MeHandler struct {
	AuthService *service.AuthService
}

// HandleGet godoc
//
//	@Summary		Current profile
//	@Description	Returns the authenticated user's profile.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	userResponse
//	@Failure		401	{object}	errorResponse	"error"
//	@Router			/auth/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, newUserResponse(user))
}

// HandlePatch godoc
//
//	@Summary		Update profile
//	@Description	Applies a partial update to the authenticated user's profile. Omitted fields are left unchanged.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		updateMeRequest	true	"Fields to change"
//	@Success		200		{object}	userResponse
//	@Failure		400		{object}	errorResponse	"error, fields"
//	@Failure		401		{object}	errorResponse	"error"
//	@Failure		500		{object}	errorResponse	"error"
//	@Router			/auth/me [patch].
func (h *MeHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := userFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req updateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.normalize()
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	updated, err := h.AuthService.UpdateProfile(ctx, user, service.UpdateProfileParams{
		Name:           req.Name,
		AvatarURL:      req.AvatarURL,
		Language:       req.Language,
		Theme:          req.Theme,
		SidebarVisible: req.SidebarVisible,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		log.Error("profile update failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, newUserResponse(updated))
}
