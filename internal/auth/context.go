package auth

import (
	"context"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// sessionContextKey is the context key for storing the resolved session.
const sessionContextKey contextKey = "session"

// ContextWithSession adds the authenticated session to the context.
func ContextWithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext retrieves the authenticated session from the context.
// Returns nil if not present.
func SessionFromContext(ctx context.Context) *model.Session {
	session, ok := ctx.Value(sessionContextKey).(*model.Session)
	if !ok {
		return nil
	}
	return session
}

// UserIDFromContext is a convenience function to get the authenticated
// user ID from context. Returns empty string if not authenticated.
func UserIDFromContext(ctx context.Context) string {
	session := SessionFromContext(ctx)
	if session == nil {
		return ""
	}
	return session.UserID
}
