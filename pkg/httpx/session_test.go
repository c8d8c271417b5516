package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testSessionCookie() SessionCookie {
	return SessionCookie{
		Name:     "jt_session",
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	}
}

func TestSessionCookie_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	testSessionCookie().Write(rec, "tok-123", 86400)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	ck := cookies[0]
	require.Equal(t, "jt_session", ck.Name)
	require.Equal(t, "tok-123", ck.Value)
	require.True(t, ck.HttpOnly)
	require.True(t, ck.Secure)
	require.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	require.Equal(t, "/", ck.Path)
	require.Equal(t, 86400, ck.MaxAge)
	require.Empty(t, ck.Domain)
}

func TestSessionCookie_Write_ClampsMaxAge(t *testing.T) {
	rec := httptest.NewRecorder()
	testSessionCookie().Write(rec, "tok", 0)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, 1, cookies[0].MaxAge)
}

func TestSessionCookie_Write_TrimsDomain(t *testing.T) {
	c := testSessionCookie()
	c.Domain = "  example.com  "

	rec := httptest.NewRecorder()
	c.Write(rec, "tok", 60)

	require.Equal(t, "example.com", rec.Result().Cookies()[0].Domain)
}

func TestSessionCookie_Clear(t *testing.T) {
	rec := httptest.NewRecorder()
	testSessionCookie().Clear(rec)

	raw := rec.Header().Get("Set-Cookie")
	require.Contains(t, raw, "jt_session=")
	require.Contains(t, raw, "Max-Age=0")

	ck := rec.Result().Cookies()[0]
	require.Empty(t, ck.Value)
}

func TestSessionCookie_Extract(t *testing.T) {
	c := testSessionCookie()

	t.Run("absent", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := c.Extract(r)
		require.False(t, ok)
	})

	t.Run("cookie carrier", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "jt_session", Value: "cookie-token"})

		tok, ok := c.Extract(r)
		require.True(t, ok)
		require.Equal(t, "cookie-token", tok)
	})

	t.Run("bearer carrier", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer header-token")

		tok, ok := c.Extract(r)
		require.True(t, ok)
		require.Equal(t, "header-token", tok)
	})

	t.Run("bearer strips only the scheme prefix", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer a.b.c")

		tok, ok := c.Extract(r)
		require.True(t, ok)
		require.Equal(t, "a.b.c", tok)

		// A bare scheme with no token is not a carrier match.
		r = httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer")
		_, ok = c.Extract(r)
		require.False(t, ok)
	})

	t.Run("bearer wins over cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer header-token")
		r.AddCookie(&http.Cookie{Name: "jt_session", Value: "cookie-token"})

		tok, ok := c.Extract(r)
		require.True(t, ok)
		require.Equal(t, "header-token", tok)
	})

	t.Run("empty cookie value is absent", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Cookie", "jt_session=")
		_, ok := c.Extract(r)
		require.False(t, ok)
	})
}

func TestParseSameSite(t *testing.T) {
	require.Equal(t, http.SameSiteStrictMode, ParseSameSite("Strict"))
	require.Equal(t, http.SameSiteNoneMode, ParseSameSite("none"))
	require.Equal(t, http.SameSiteLaxMode, ParseSameSite("Lax"))
	require.Equal(t, http.SameSiteLaxMode, ParseSameSite(""))
	require.Equal(t, http.SameSiteLaxMode, ParseSameSite("bogus"))
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"hello": "world"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.True(t, strings.Contains(rec.Body.String(), `"hello":"world"`))
}
