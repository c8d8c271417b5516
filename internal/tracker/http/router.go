package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jobtrack/jobtrack/internal/tracker/service"
	"github.com/jobtrack/jobtrack/internal/tracker/store"
	"github.com/jobtrack/jobtrack/pkg/httpx"
	"github.com/jobtrack/jobtrack/pkg/slogx"

	_ "github.com/jobtrack/jobtrack/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	cookie       httpx.SessionCookie
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	TokenService       *service.TokenService
	AuthService        *service.AuthService
	ApplicationService *service.ApplicationService
}

func NewRouter(
	cookie httpx.SessionCookie,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		cookie:       cookie,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	// Identity resolution runs on every request; it never rejects.
	r.middlewares = append(r.middlewares,
		SessionMiddleware(r.TokenService, r.AuthService, r.cookie),
	)

	r.registerAuth()
	r.registerApplications()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			JobTrack API
//	@version		0.1.0
//	@description	Personal job application tracker with cookie-based JWT sessions and an
//	@description	append-only status transition ledger per application.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	register := &RegisterHandler{
		AuthService:  r.AuthService,
		TokenService: r.TokenService,
		Cookie:       r.cookie,
	}
	login := &LoginHandler{
		AuthService:  r.AuthService,
		TokenService: r.TokenService,
		Cookie:       r.cookie,
	}
	logout := &LogoutHandler{Cookie: r.cookie}
	me := &MeHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /auth/register", register)
	r.Mux.Handle("POST /auth/login", login)
	r.Mux.Handle("POST /auth/logout", logout)
	r.Mux.Handle("GET /auth/me", httpx.Chain(http.HandlerFunc(me.HandleGet), RequireUser()))
	r.Mux.Handle("PATCH /auth/me", httpx.Chain(http.HandlerFunc(me.HandlePatch), RequireUser()))
}

func (r *Router) registerApplications() {
	h := &ApplicationsHandler{ApplicationService: r.ApplicationService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, RequireUser())
	}

	r.Mux.Handle("GET /applications", secured(h.HandleList))
	r.Mux.Handle("POST /applications", secured(h.HandleCreate))
	r.Mux.Handle("GET /applications/{id}", secured(h.HandleGet))
	r.Mux.Handle("PUT /applications/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /applications/{id}", secured(h.HandleDelete))
	r.Mux.Handle("PATCH /applications/{id}/status", secured(h.HandleUpdateStatus))
	r.Mux.Handle("GET /applications/{id}/history", secured(h.HandleHistory))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
