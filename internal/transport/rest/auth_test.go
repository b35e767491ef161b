package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/timesheet-relay/internal/config"
	"github.com/heartmarshall/timesheet-relay/internal/domain"
	"github.com/heartmarshall/timesheet-relay/internal/service/auth"
)

type sessionProviderStub struct {
	login    func(identifier, password string) (*domain.Session, error)
	register func(username, email, password string) (*domain.Session, error)
}

func (s *sessionProviderStub) Login(_ context.Context, identifier, password string) (*domain.Session, error) {
	return s.login(identifier, password)
}

func (s *sessionProviderStub) Register(_ context.Context, username, email, password string) (*domain.Session, error) {
	return s.register(username, email, password)
}

// backendRejection mimics a content backend error with a user-facing message.
type backendRejection struct{ msg string }

func (e *backendRejection) Error() string         { return "backend: " + e.msg }
func (e *backendRejection) PublicMessage() string { return e.msg }
func (e *backendRejection) Unwrap() error         { return domain.ErrValidation }

func newAuthHandler(provider *sessionProviderStub) *AuthHandler {
	svc := auth.NewService(testLogger(), provider, config.SessionConfig{CookieName: "jwt", TTL: time.Hour}, true)
	return NewAuthHandler(svc, testLogger())
}

func doAuth(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "jwt" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestAuthLogin_SetsCookieAndHidesIdentifiers(t *testing.T) {
	t.Parallel()

	id, docID := 12, "u-doc"
	h := newAuthHandler(&sessionProviderStub{
		login: func(identifier, password string) (*domain.Session, error) {
			assert.Equal(t, "ada", identifier)
			assert.Equal(t, "secret1", password)
			return &domain.Session{
				Token: "token-abc",
				User:  domain.User{ID: &id, DocumentID: &docID, Username: "ada", Email: "ada@example.com", Confirmed: true},
			}, nil
		},
	})

	rec := doAuth(h.Login, `{"identifier":"  ada ","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"user":{"id":null,"documentId":null,"username":"ada","email":"ada@example.com","confirmed":true,"blocked":false}}`,
		rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "token-abc")

	c := sessionCookie(t, rec)
	assert.Equal(t, "token-abc", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 3600, c.MaxAge)
}

func TestAuthLogin_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		loginErr error
		wantCode int
		wantBody string
	}{
		{
			name:     "backend rejects credentials",
			body:     `{"identifier":"ada","password":"wrong-pass"}`,
			loginErr: &backendRejection{msg: "Invalid identifier or password"},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"message":"Invalid identifier or password"}`,
		},
		{
			name:     "rejection without message",
			body:     `{"identifier":"ada","password":"wrong-pass"}`,
			loginErr: errors.New("boom"),
			wantCode: http.StatusUnauthorized,
			wantBody: `{"message":"Login failed"}`,
		},
		{
			name:     "backend unavailable",
			body:     `{"identifier":"ada","password":"secret1"}`,
			loginErr: fmt.Errorf("cms: dial: %w", domain.ErrUpstream),
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"backend unavailable"}`,
		},
		{
			name:     "malformed body",
			body:     `{"identifier":`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newAuthHandler(&sessionProviderStub{
				login: func(string, string) (*domain.Session, error) { return nil, tt.loginErr },
			})

			rec := doAuth(h.Login, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestAuthLogin_ValidationSkipsBackend(t *testing.T) {
	t.Parallel()

	called := false
	h := newAuthHandler(&sessionProviderStub{
		login: func(string, string) (*domain.Session, error) {
			called = true
			return nil, nil
		},
	})

	rec := doAuth(h.Login, `{"identifier":"","password":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"identifier"`)
	assert.False(t, called)
}

func TestAuthRegister(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		h := newAuthHandler(&sessionProviderStub{
			register: func(username, email, _ string) (*domain.Session, error) {
				assert.Equal(t, "ada@example.com", email)
				return &domain.Session{Token: "t1", User: domain.User{Username: username, Email: email}}, nil
			},
		})

		rec := doAuth(h.Register, `{"username":"ada","email":"Ada@Example.com","password":"secret1"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "t1", sessionCookie(t, rec).Value)
	})

	t.Run("backend rejects", func(t *testing.T) {
		t.Parallel()

		h := newAuthHandler(&sessionProviderStub{
			register: func(string, string, string) (*domain.Session, error) {
				return nil, &backendRejection{msg: "Email or Username are already taken"}
			},
		})

		rec := doAuth(h.Register, `{"username":"ada","email":"ada@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Email or Username are already taken"}`, rec.Body.String())
	})
}

func TestAuthLogout_ExpiresCookie(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(&sessionProviderStub{})
	rec := doAuth(h.Logout, "")

	require.Equal(t, http.StatusOK, rec.Code)
	c := sessionCookie(t, rec)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}
