package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout        = 10 * time.Second
	rateLimitCleanupPeriod = time.Minute
)

func serveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, err := database.Initialize(ctx, opts.cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			app := newApplication(db, services.NewPrometheusMetrics(prometheus.DefaultRegisterer), slog.Default())
			e := newServer(ctx, opts.cfg, app, db)

			return runServer(ctx, e, opts.cfg.Server)
		},
	}
}

// newServer builds the echo instance with the middleware chain and routes.
// The rate limiter's cleanup loop stops with ctx.
func newServer(ctx context.Context, cfg *config.Config, app *application, db *database.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.RunCleanup(ctx, rateLimitCleanupPeriod)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))
	e.Use(limiter.Middleware())

	finance := handlers.NewFinanceHandler(app.categories, app.ledger, app.debts, app.investments, app.dashboard)
	handlers.RegisterRoutes(e, finance, handlers.NewHealthCheckHandler(db), promhttp.Handler())

	return e
}

// runServer serves until ctx is cancelled, then drains in-flight requests.
func runServer(ctx context.Context, e *echo.Echo, cfg config.ServerConfig) error {
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", addr, "environment", cfg.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
