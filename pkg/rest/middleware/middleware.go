package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type MiddlewareFunc func(next http.HandlerFunc) http.HandlerFunc

type contextKey string

const requestIDKey = contextKey("id")

func Chain(mws ...MiddlewareFunc) MiddlewareFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}

// RequestID returns the id assigned by WithIncomingRequestLogging, or "N/A".
func RequestID(ctx context.Context) string {
	id, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return "N/A"
	}
	return id
}

func WithIncomingRequestLogging(logger *slog.Logger) MiddlewareFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			parent := r.Context() // re-use request context

			id, err := uuid.NewV7()
			if err != nil {
				r = r.WithContext(context.WithValue(parent, requestIDKey, "N/A"))
			} else {
				r = r.WithContext(context.WithValue(parent, requestIDKey, id.String()))
			}

			logger.Info("incoming request",
				slog.GroupAttrs(
					"meta_data",
					slog.String("request_id", RequestID(r.Context())),
					slog.String("method", r.Method),
					slog.String("remote_host", r.RemoteAddr),
					slog.String("route", r.URL.Path),
					slog.String("query", r.URL.RawQuery),
					slog.String("user_agent", r.UserAgent()),
				),
			)

			next.ServeHTTP(w, r)
		}
	}
}
