// Package auth signs users in and out through the content backend and
// builds the session cookie the rest of the API relies on.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/timesheet-relay/internal/config"
	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// sessionProvider issues sessions for credentials.
type sessionProvider interface {
	Login(ctx context.Context, identifier, password string) (*domain.Session, error)
	Register(ctx context.Context, username, email, password string) (*domain.Session, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	provider sessionProvider
	cfg      config.SessionConfig
	secure   bool
}

// NewService creates a new auth service. secure marks the cookie
// Secure, which production deployments need.
func NewService(
	logger *slog.Logger,
	provider sessionProvider,
	cfg config.SessionConfig,
	secure bool,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		provider: provider,
		cfg:      cfg,
		secure:   secure,
	}
}

// SessionCookie wraps a session token in the HTTP-only cookie.
func (s *Service) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.TTL / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearCookie expires the session cookie.
func (s *Service) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// CookieName is the name of the session cookie.
func (s *Service) CookieName() string { return s.cfg.CookieName }
