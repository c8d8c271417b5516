package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/jobtrack/jobtrack/internal/tracker/http"
	"github.com/jobtrack/jobtrack/internal/tracker/service"
	"github.com/jobtrack/jobtrack/internal/tracker/store"
	"github.com/jobtrack/jobtrack/internal/tracker/store/drivers/sqlite"
	"github.com/jobtrack/jobtrack/pkg/cryptox"
	"github.com/jobtrack/jobtrack/pkg/httpx"
	"github.com/jobtrack/jobtrack/pkg/jwtx"
	"github.com/jobtrack/jobtrack/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the tracker service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	tokenService       *service.TokenService
	authService        *service.AuthService
	applicationService *service.ApplicationService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "jobtrack",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("jobtrack service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down jobtrack service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "err", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "err", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "err", err)
		return err
	}

	app.logger.Info("jobtrack service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	secret := []byte(app.cfg.JWTSecret)

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256(secret)
	if err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	app.tokenService = &service.TokenService{
		Signer:   signer,
		Verifier: verifier,
		TTL:      app.cfg.JWTExpiration,
	}
	app.authService = &service.AuthService{Store: app.db}
	app.applicationService = &service.ApplicationService{Store: app.db}

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	cookie := httpx.SessionCookie{
		Name:     app.cfg.CookieName,
		Secure:   app.cfg.CookieSecure,
		SameSite: app.cfg.CookieSameSite,
		Path:     app.cfg.CookiePath,
		Domain:   app.cfg.CookieDomain,
	}

	router := httpapi.NewRouter(cookie, BuildVersion, app.db, app.logger)

	// Wire services to router
	router.TokenService = app.tokenService
	router.AuthService = app.authService
	router.ApplicationService = app.applicationService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
