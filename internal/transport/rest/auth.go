package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
	"github.com/heartmarshall/timesheet-relay/internal/service/auth"
)

const maxAuthBodyBytes = 16 << 10

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*domain.Session, error)
	Register(ctx context.Context, input auth.RegisterInput) (*domain.Session, error)
	SessionCookie(token string) *http.Cookie
	ClearCookie() *http.Cookie
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID         *int    `json:"id"`
	DocumentID *string `json:"documentId"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Confirmed  bool    `json:"confirmed"`
	Blocked    bool    `json:"blocked"`
}

type sessionResponse struct {
	User userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login handles POST /api/auth/login. The session token is only ever
// delivered in the HTTP-only cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, maxAuthBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	sess, err := h.svc.Login(r.Context(), auth.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		h.writeAuthError(w, r, err, "Login failed")
		return
	}

	http.SetCookie(w, h.svc.SessionCookie(sess.Token))
	writeJSON(w, http.StatusOK, sessionResponse{User: toUserResponse(sess.User)})
}

// Register handles POST /api/auth/register and signs the new user in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, maxAuthBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	sess, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeAuthError(w, r, err, "Registration failed")
		return
	}

	http.SetCookie(w, h.svc.SessionCookie(sess.Token))
	writeJSON(w, http.StatusCreated, sessionResponse{User: toUserResponse(sess.User)})
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.svc.ClearCookie())
	writeJSON(w, http.StatusOK, messageResponse{Message: "logged out"})
}

// writeAuthError answers with {message}. Credential failures are checked
// before validation because a rejected login wraps both.
func (h *AuthHandler) writeAuthError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var ve *domain.ValidationError
	msg := domain.PublicMessage(err)
	if msg == "" {
		msg = fallback
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, messageResponse{Message: msg})
	case errors.As(err, &ve):
		handleError(h.log, w, r, err)
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msg})
	default:
		handleError(h.log, w, r, err)
	}
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		DocumentID: u.DocumentID,
		Username:   u.Username,
		Email:      u.Email,
		Confirmed:  u.Confirmed,
		Blocked:    u.Blocked,
	}
}
