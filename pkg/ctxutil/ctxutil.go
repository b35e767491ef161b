package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey    ctxKey = "request_id"
	sessionTokenKey ctxKey = "session_token"
	userIDKey       ctxKey = "user_id"
	userSlotKey     ctxKey = "user_slot"
)

// userSlot lets an inner handler report the user ID to an outer one that
// only holds the parent context.
type userSlot struct{ id string }

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithSessionToken stores the caller's session token so outbound calls to
// the content backend can act on the caller's behalf.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey, token)
}

// SessionTokenFromCtx extracts the session token.
// Returns "" and false if the value is missing or empty.
func SessionTokenFromCtx(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// WithUserSlot prepares ctx so that a later WithUserID on a derived
// context is visible through UserIDFromCtx(ctx) as well.
func WithUserSlot(ctx context.Context) context.Context {
	return context.WithValue(ctx, userSlotKey, &userSlot{})
}

// WithUserID stores the backend user ID taken from a verified session and
// fills the enclosing user slot, if any.
func WithUserID(ctx context.Context, id string) context.Context {
	if slot, ok := ctx.Value(userSlotKey).(*userSlot); ok {
		slot.id = id
	}
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID. Returns "" and false if absent.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		if slot, isSlot := ctx.Value(userSlotKey).(*userSlot); isSlot {
			id = slot.id
		}
	}
	if id == "" {
		return "", false
	}
	return id, true
}
