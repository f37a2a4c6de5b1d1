package http

import (
	"log/slog"
	"net/http"

	"storyloom/internal/contextutil"
)

// LoggerMiddleware adds a request-scoped structured logger to the request
// context. Handlers and services retrieve it with
// contextutil.LoggerFromContext.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default().With(
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		ctx := contextutil.WithLogger(r.Context(), logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
