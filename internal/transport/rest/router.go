package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timesheet-relay/internal/config"
	"github.com/heartmarshall/timesheet-relay/internal/transport/middleware"
)

// SessionVerifier checks a session token and returns the user it belongs to.
type SessionVerifier interface {
	Verify(token string) (string, error)
}

// RouterConfig holds everything NewRouter wires together. Verifier and
// IngestLimit may be nil.
type RouterConfig struct {
	Logger     *slog.Logger
	CORS       config.CORSConfig
	CookieName string
	Verifier   SessionVerifier

	// IngestLimit throttles webhook ingestion.
	IngestLimit middleware.Middleware

	Health     *HealthHandler
	Webhook    *WebhookHandler
	Auth       *AuthHandler
	Timesheets *TimesheetHandler
}

// NewRouter builds the HTTP handler with all routes and the global
// middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	session := middleware.Session(cfg.CookieName, cfg.Verifier)
	protect := func(h http.HandlerFunc) http.Handler { return middleware.Wrap(h, session) }

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)

	mux.HandleFunc("GET /api/webhooks/timesheet", cfg.Webhook.Subscribe)
	mux.Handle("POST /api/webhooks/timesheet", middleware.Wrap(cfg.Webhook.Publish, cfg.IngestLimit))

	mux.HandleFunc("POST /api/auth/login", cfg.Auth.Login)
	mux.HandleFunc("POST /api/auth/register", cfg.Auth.Register)
	mux.HandleFunc("POST /api/auth/logout", cfg.Auth.Logout)

	ts := cfg.Timesheets
	mux.Handle("GET /api/timesheets", protect(ts.List))
	mux.Handle("POST /api/timesheets", protect(ts.Create))
	mux.Handle("GET /api/timesheets/week/{week}/{year}", protect(ts.GetByWeek))
	mux.Handle("DELETE /api/timesheets/{id}", protect(ts.Delete))
	mux.Handle("POST /api/timesheets/{id}/tasks", protect(ts.CreateTask))
	mux.Handle("PUT /api/timesheets/{id}/tasks/{taskId}", protect(ts.UpdateTask))
	mux.Handle("DELETE /api/timesheets/{id}/tasks/{taskId}", protect(ts.DeleteTask))
	mux.Handle("POST /api/uploads", protect(ts.Upload))

	return middleware.Chain(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
