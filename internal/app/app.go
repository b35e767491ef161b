package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/timesheet-relay/internal/adapter/cms"
	"github.com/heartmarshall/timesheet-relay/internal/auth"
	"github.com/heartmarshall/timesheet-relay/internal/config"
	"github.com/heartmarshall/timesheet-relay/internal/relay"
	authsvc "github.com/heartmarshall/timesheet-relay/internal/service/auth"
	"github.com/heartmarshall/timesheet-relay/internal/service/reconciler"
	"github.com/heartmarshall/timesheet-relay/internal/service/timesheet"
	"github.com/heartmarshall/timesheet-relay/internal/transport/middleware"
	"github.com/heartmarshall/timesheet-relay/internal/transport/rest"
)

const rateLimitCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, wires the
// relay, backend client, services and router, then serves HTTP until ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildInfo(),
		slog.String("environment", cfg.Environment),
		slog.String("log_level", cfg.Log.Level),
	)

	srv, cleanup := newServer(cfg, logger)
	defer cleanup()

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newServer builds the HTTP server and returns a cleanup func that closes
// the relay hub and stops background workers.
func newServer(cfg *config.Config, logger *slog.Logger) (*http.Server, func()) {
	backend := cms.New(cfg.CMS, logger)

	hub := relay.NewHub(logger, relay.Options{
		KeepAlive: cfg.Relay.KeepAliveInterval,
		Buffer:    cfg.Relay.SubscriberBuffer,
	})

	timesheetService := timesheet.NewService(logger, backend)
	reconcilerService := reconciler.NewService(logger, backend, backend, hub)
	authService := authsvc.NewService(logger, backend, cfg.Session, cfg.IsProduction())

	var verifier rest.SessionVerifier
	if cfg.Session.JWTSecret != "" {
		verifier = auth.NewSessionVerifier(cfg.Session.JWTSecret)
	}

	var (
		ingestLimit middleware.Middleware
		limiter     *middleware.RateLimiter
	)
	if cfg.Relay.IngestRatePerMinute > 0 {
		limiter = middleware.NewRateLimiter(rateLimitCleanup)
		ingestLimit = limiter.Limit(cfg.Relay.IngestRatePerMinute)
	}

	handler := rest.NewRouter(rest.RouterConfig{
		Logger:      logger,
		CORS:        cfg.CORS,
		CookieName:  authService.CookieName(),
		Verifier:    verifier,
		IngestLimit: ingestLimit,
		Health:      rest.NewHealthHandler(backend, hub, Version),
		Webhook:     rest.NewWebhookHandler(hub, cfg.Relay.MaxPayloadBytes, logger),
		Auth:        rest.NewAuthHandler(authService, logger),
		Timesheets:  rest.NewTimesheetHandler(timesheetService, reconcilerService, backend, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	cleanup := func() {
		hub.Close()
		if limiter != nil {
			limiter.Stop()
		}
	}
	// Open streams end when the hub closes, so Shutdown does not wait on them.
	srv.RegisterOnShutdown(hub.Close)

	return srv, cleanup
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
