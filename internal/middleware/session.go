package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/harshbadhann2/society-home-connect/internal/auth"
	"github.com/harshbadhann2/society-home-connect/internal/session"
)

// SessionSource checks an access token against the backend.
type SessionSource interface {
	Current(ctx context.Context, accessToken string) *session.Session
}

// ContextSource hands out the per-session auth contexts.
type ContextSource interface {
	Get(sessionID string) (*auth.Context, bool)
}

// Bootstrapper resolves the auth context of a session seen for the first
// time.
type Bootstrapper interface {
	Bootstrap(ctx context.Context, s *session.Session) *auth.Context
}

// Authenticate resolves the caller's session and auth state and stores both
// in the echo context. It never rejects a request; Guard decides what to do
// with the state.
func Authenticate(sessions SessionSource, contexts ContextSource, boot Bootstrapper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			st := auth.State{Status: auth.StatusReady}

			var s *session.Session
			if tok := AccessToken(c.Request()); tok != "" {
				s = sessions.Current(ctx, tok)
			}
			if s != nil {
				actx, ok := contexts.Get(s.ID)
				if !ok {
					actx = boot.Bootstrap(ctx, s)
				}
				st = actx.Snapshot()
				c.Set(keySession, s)
			}

			c.Set(keyAuthState, st)
			return next(c)
		}
	}
}
