package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/jobtrack/jobtrack/internal/tracker/domain"
	"github.com/jobtrack/jobtrack/internal/tracker/service"
	"github.com/jobtrack/jobtrack/pkg/httpx"
	"github.com/jobtrack/jobtrack/pkg/slogx"
)

type ctxKey string

const ctxKeyUser ctxKey = "current_user"

// userFromContext returns the authenticated user bound by SessionMiddleware.
func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(domain.User)
	return u, ok
}

// SessionMiddleware resolves the caller's identity from the session token
// and binds it into the request context. It never rejects: requests with a
// missing, malformed or expired token proceed anonymously and the guarded
// handlers decide whether identity is required. If an earlier middleware
// already bound a user the request passes through untouched.
func SessionMiddleware(tokens *service.TokenService, auth *service.AuthService, cookie httpx.SessionCookie) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if _, ok := userFromContext(ctx); ok {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := cookie.Extract(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := tokens.Verify(raw)
			if err != nil {
				slogx.FromContext(ctx).Debug("discarding invalid session token")
				next.ServeHTTP(w, r)
				return
			}

			user, err := auth.ResolveSubject(ctx, subject)
			if err != nil {
				if !errors.Is(err, service.ErrUserNotFound) {
					slogx.FromContext(ctx).Error("failed to resolve session subject", "err", err)
					writeError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, ctxKeyUser, user)))
		})
	}
}

// RequireUser guards a route: requests without a resolved identity get a 401.
func RequireUser() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := userFromContext(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
