package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jobtrack/jobtrack/internal/tracker/service"
	"github.com/jobtrack/jobtrack/pkg/httpx"
	"github.com/jobtrack/jobtrack/pkg/slogx"
)

// LoginHandler serves POST /auth/login.
type LoginHandler struct {
	AuthService  *service.AuthService
	TokenService *service.TokenService
	Cookie       httpx.SessionCookie
}

// ServeHTTP godoc
//
//	@Summary		Authenticate with email and password
//	@Description	Verifies credentials and opens a session. Unknown emails and wrong passwords produce the same 401.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	authResponse	"user"
//	@Failure		400		{object}	errorResponse	"error, fields"
//	@Failure		401		{object}	errorResponse	"error"
//	@Failure		500		{object}	errorResponse	"error"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			log.Error("login failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.TokenService.Issue(user.Email)
	if err != nil {
		log.Error("failed to issue session token", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Cookie.Write(w, token, h.TokenService.TTLSeconds())
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authResponse{User: newUserResponse(user)})
}
