package middleware

import (
	"net/http"

	"github.com/heartmarshall/timesheet-relay/pkg/ctxutil"
)

type tokenVerifier interface {
	Verify(token string) (string, error)
}

// Session rejects requests without the session cookie. The token is put
// in the context so outgoing backend calls run as the user. When verifier
// is non-nil the token signature and expiry are checked first.
func Session(cookieName string, verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				unauthorized(w)
				return
			}

			ctx := ctxutil.WithSessionToken(r.Context(), c.Value)
			if verifier != nil {
				userID, err := verifier.Verify(c.Value)
				if err != nil {
					unauthorized(w)
					return
				}
				ctx = ctxutil.WithUserID(ctx, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
}
