// Package auth verifies session tokens issued by the content backend.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail parsing or verification.
var ErrInvalidToken = errors.New("invalid session token")

// SessionVerifier checks HS256 session tokens signed with the backend's
// JWT secret.
type SessionVerifier struct {
	secret []byte
}

// NewSessionVerifier creates a verifier for the given shared secret.
// secret must be at least 32 characters for HS256 security.
func NewSessionVerifier(secret string) *SessionVerifier {
	return &SessionVerifier{secret: []byte(secret)}
}

// sessionClaims carries the numeric user id the backend puts in "id".
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int `json:"id"`
}

// Issue signs a token in the backend's format. Used by tooling and tests.
func (v *SessionVerifier) Issue(userID int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token and returns the user id.
func (v *SessionVerifier) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}
	if claims.UserID <= 0 {
		return "", fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	return strconv.Itoa(claims.UserID), nil
}
