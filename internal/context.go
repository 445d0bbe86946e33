package internal

import (
	"context"
	"time"
)

type ctxKey string

const contextUserKey ctxKey = "userID"

// DefaultTimeout bounds store and readiness calls issued on behalf of a request.
const DefaultTimeout = 5 * time.Second

// ContextWithUserID stamps the calling user onto the context. Identity here
// travels in request payloads, not credentials; the transport layer records
// it for log correlation only.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextUserKey, userID)
}

// UserIDFromContext returns the stamped user ID, or "" when none is set.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if userID, ok := ctx.Value(contextUserKey).(string); ok {
		return userID
	}
	return ""
}

// WithTimeout derives a deadline-bound context, falling back to
// DefaultTimeout when no positive duration is given.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = DefaultTimeout
	}
	return context.WithTimeout(ctx, duration)
}
