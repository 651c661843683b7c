// Package middleware provides HTTP middleware for the MyWallet API.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/auth"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/service"
)

// AuthConfig holds configuration for the session auth middleware.
type AuthConfig struct {
	Logger   *slog.Logger
	Sessions *service.SessionService
}

// Auth returns a middleware that authorizes requests by bearer session
// token. The resolved session is injected into the request context; the
// same generic 401 body is written for every failure so callers cannot
// probe which check rejected them.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := cfg.Sessions.Authorize(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				reason := "invalid_token"
				if !errors.Is(err, service.ErrUnauthenticated) {
					reason = "storage_error"
					cfg.Logger.Error("session lookup failed during auth",
						slog.String("error", err.Error()),
						slog.String("request_id", GetRequestID(r.Context())),
					)
				}
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", reason),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w)
				return
			}

			ctx := auth.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"Invalid or missing session token"}}`))
}
