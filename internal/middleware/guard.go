package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/harshbadhann2/society-home-connect/internal/auth"
	"github.com/harshbadhann2/society-home-connect/internal/guard"
	"github.com/harshbadhann2/society-home-connect/internal/metrics"
)

// RetryAfterSeconds is sent with the loading response while a session check
// is still running.
const RetryAfterSeconds = "1"

// Guard gates view routes. Unauthenticated callers are redirected to the
// login view and callers whose role is not allowed to the dashboard, both
// with 303 and no body. While the caller's state is still unknown it answers
// 503 with Retry-After.
func Guard(table *guard.Table, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := table.Decide(StateFrom(c), c.Request().URL.Path)
			m.GuardDecision(d.String())
			switch d {
			case guard.Loading:
				c.Response().Header().Set("Retry-After", RetryAfterSeconds)
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "loading"})
			case guard.RedirectLogin:
				return c.Redirect(http.StatusSeeOther, guard.LoginPath)
			case guard.RedirectHome:
				return c.Redirect(http.StatusSeeOther, guard.HomePath)
			}
			return next(c)
		}
	}
}

// RequireRole rejects API callers whose role is not listed with 401 when no
// one is signed in and 403 otherwise. It is meant for JSON endpoints, where
// a redirect would be meaningless.
func RequireRole(roles ...auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			st := StateFrom(c)
			if !st.Authenticated {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}
			if !slices.Contains(roles, st.Role) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
