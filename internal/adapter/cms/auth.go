package cms

import (
	"context"
	"net/http"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	var resp apiAuthResponse
	body := loginPayload{Identifier: identifier, Password: password}
	if err := c.doJSON(ctx, "login", http.MethodPost, "/api/auth/local", nil, body, &resp); err != nil {
		return nil, err
	}
	return &domain.Session{Token: resp.JWT, User: mapUser(resp.User)}, nil
}

// Register creates an account and returns its first session.
func (c *Client) Register(ctx context.Context, username, email, password string) (*domain.Session, error) {
	var resp apiAuthResponse
	body := registerPayload{Username: username, Email: email, Password: password}
	if err := c.doJSON(ctx, "register", http.MethodPost, "/api/auth/local/register", nil, body, &resp); err != nil {
		return nil, err
	}
	return &domain.Session{Token: resp.JWT, User: mapUser(resp.User)}, nil
}
