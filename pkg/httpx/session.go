package httpx

import (
	"net/http"
	"strings"
)

// SessionCookie maps a session token to and from its HTTP carrier. Two
// carriers are supported: an Authorization bearer header for stateless API
// clients, and an httpOnly cookie for browsers.
type SessionCookie struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
	Path     string
	Domain   string // optional; applied only when non-blank after trimming
}

// Write sets the session cookie carrying token. Cookie expiry is aligned
// with token expiry; maxAge is clamped to at least one second.
func (c SessionCookie) Write(w http.ResponseWriter, token string, ttlSeconds int) {
	http.SetCookie(w, c.cookie(token, max(1, ttlSeconds)))
}

// Clear emits the same cookie with an empty value and Max-Age=0 so the
// client drops it immediately. net/http serializes Max-Age=0 only for
// negative MaxAge values, hence the -1.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie("", -1))
}

// Extract returns the session token from the request, preferring an
// Authorization bearer header over the configured cookie. The second
// return value reports whether any carrier was present.
func (c SessionCookie) Extract(r *http.Request) (string, bool) {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer "), true
	}

	cookie, err := r.Cookie(c.Name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (c SessionCookie) cookie(value string, maxAge int) *http.Cookie {
	ck := &http.Cookie{
		Name:     c.Name,
		Value:    value,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
		Path:     c.Path,
		MaxAge:   maxAge,
	}
	if d := strings.TrimSpace(c.Domain); d != "" {
		ck.Domain = d
	}
	return ck
}

// ParseSameSite maps a configuration string to http.SameSite, defaulting
// to Lax.
func ParseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
