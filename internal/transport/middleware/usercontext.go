package middleware

import (
	"net/http"

	"github.com/vesotel/worklog-management/internal"
	"github.com/vesotel/worklog-management/pkg/logger"
)

// UserContext stamps the caller identity from the X-User-ID header onto the
// request context so downstream logs can be correlated per user. It is a
// log-correlation hint only, never an authorization input.
func UserContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get("X-User-ID"); userID != "" {
			ctx := internal.ContextWithUserID(r.Context(), userID)
			ctx = logger.With(ctx, "userID", userID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}
