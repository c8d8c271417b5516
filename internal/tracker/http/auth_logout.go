package http

import (
	"net/http"

	"github.com/jobtrack/jobtrack/pkg/httpx"
)

// LogoutHandler serves POST /auth/logout.
type LogoutHandler struct {
	Cookie httpx.SessionCookie
}

// ServeHTTP godoc
//
//	@Summary		Close the current session
//	@Description	Expires the session cookie. Succeeds whether or not a session was open; tokens are stateless so none is revoked server side.
//	@Tags			Auth
//	@Produce		json
//	@Success		204	"session cookie cleared"
//	@Router			/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Cookie.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}
