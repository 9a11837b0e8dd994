package handler

import (
	"context"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/harshbadhann2/society-home-connect/internal/fallback"
	"github.com/harshbadhann2/society-home-connect/internal/guard"
	"github.com/harshbadhann2/society-home-connect/internal/middleware"
)

// Counter yields the size of one collection for the dashboard summary.
type Counter struct {
	View      string
	Route     string
	Count     func(ctx context.Context) (int, error)
	SampleLen int
}

// NewCounter builds the Counter of a collection view.
func NewCounter[T any](view, route string, rows Rows[T], sample func() []T) Counter {
	return Counter{View: view, Route: route, Count: rows.Count, SampleLen: len(sample())}
}

// DashboardHandler serves "/" and "/profile".
type DashboardHandler struct {
	Counters []Counter
	Routes   *guard.Table
	Reporter fallback.Reporter
}

type countEntry struct {
	Count  int             `json:"count"`
	Source fallback.Source `json:"source"`
}

// Home summarises every collection the caller's role may open. Counts run
// concurrently; each falls back to the sample dataset size on its own.
func (h *DashboardHandler) Home(c echo.Context) error {
	st := middleware.StateFrom(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	var visible []Counter
	for _, ct := range h.Counters {
		if allowed := h.Routes.Allowed(ct.Route); len(allowed) == 0 || slices.Contains(allowed, st.Role) {
			visible = append(visible, ct)
		}
	}

	results := make([]fallback.Count, len(visible))
	g, gctx := errgroup.WithContext(ctx)
	for i, ct := range visible {
		g.Go(func() error {
			results[i] = fallback.CountOrFallback(gctx, h.Reporter, ct.View, ct.Count, ct.SampleLen)
			return nil
		})
	}
	_ = g.Wait()

	counts := make(map[string]countEntry, len(visible))
	for i, ct := range visible {
		counts[ct.View] = countEntry{Count: results[i].Value, Source: results[i].Source}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"view":   "dashboard",
		"role":   st.Role,
		"user":   st.User,
		"counts": counts,
	})
}

// Profile shows the caller's enriched profile.
func (h *DashboardHandler) Profile(c echo.Context) error {
	st := middleware.StateFrom(c)
	return c.JSON(http.StatusOK, echo.Map{"view": "profile", "role": st.Role, "user": st.User})
}

// LoginView is the target of unauthenticated redirects. Signed-in callers
// are sent on to the dashboard.
func LoginView(c echo.Context) error {
	if middleware.StateFrom(c).Authenticated {
		return c.Redirect(http.StatusSeeOther, guard.HomePath)
	}
	return c.JSON(http.StatusOK, echo.Map{"view": "login", "action": "/v1/auth/login"})
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health reports liveness. A database outage is reported but does not fail
// the check, since every view degrades to sample data.
func Health(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
		defer cancel()
		dbState := "up"
		if db == nil || db.PingContext(ctx) != nil {
			dbState = "down"
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "db": dbState})
	}
}
