package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jobtrack/jobtrack/internal/tracker/service"
	"github.com/jobtrack/jobtrack/pkg/httpx"
	"github.com/jobtrack/jobtrack/pkg/slogx"
)

// RegisterHandler serves POST /auth/register.
type RegisterHandler struct {
	AuthService  *service.AuthService
	TokenService *service.TokenService
	Cookie       httpx.SessionCookie
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates a user account and opens a session. The session token is set as an HttpOnly cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerRequest	true	"Account details"
//	@Success		201		{object}	authResponse	"user"
//	@Failure		400		{object}	errorResponse	"error, fields"
//	@Failure		409		{object}	errorResponse	"error"
//	@Failure		500		{object}	errorResponse	"error"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.AuthService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "Email already registered")
		default:
			log.Error("registration failed", "err", err)
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
	httpx.WriteJSON(w, http.StatusCreated, authResponse{User: newUserResponse(user)})
}
