package httpx

import "context"

type ctxKey string

const (
	ctxKeyUserID    ctxKey = "user_id"
	ctxKeyUserEmail ctxKey = "user_email"
)

func contextWithIdentity(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, userID)
	return context.WithValue(ctx, ctxKeyUserEmail, email)
}

// UserIDFromContext returns the authenticated user's id, or "" when the
// request did not pass through the session middleware.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// UserEmailFromContext returns the authenticated user's email, or "".
func UserEmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyUserEmail).(string); ok {
		return v
	}
	return ""
}
