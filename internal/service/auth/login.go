package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// Login exchanges credentials for a session. Rejected credentials come
// back as ErrUnauthorized; the backend's message stays reachable through
// domain.PublicMessage.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.Session, error) {
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.provider.Login(ctx, input.Identifier, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			return nil, fmt.Errorf("auth.Login: %w", err)
		}
		s.log.InfoContext(ctx, "login rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("auth.Login: %w: %w", domain.ErrUnauthorized, err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("username", sess.User.Username))

	return &domain.Session{Token: sess.Token, User: sess.User.Public()}, nil
}

// Register creates an account and returns its first session.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Session, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.provider.Register(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("username", sess.User.Username))

	return &domain.Session{Token: sess.Token, User: sess.User.Public()}, nil
}
