package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshbadhann2/society-home-connect/internal/auth"
	"github.com/harshbadhann2/society-home-connect/internal/fallback"
	"github.com/harshbadhann2/society-home-connect/internal/guard"
	"github.com/harshbadhann2/society-home-connect/internal/middleware"
	"github.com/harshbadhann2/society-home-connect/internal/repository"
	"github.com/harshbadhann2/society-home-connect/internal/sample"
	"github.com/harshbadhann2/society-home-connect/internal/session"
	"github.com/harshbadhann2/society-home-connect/internal/testutil"
)

type homeBody struct {
	Role   auth.Role             `json:"role"`
	Counts map[string]countEntry `json:"counts"`
}

func home(t *testing.T, d *DashboardHandler, role auth.Role) homeBody {
	t.Helper()
	fs := &fakeSessions{sess: &session.Session{ID: "sid-" + string(role), UserID: 1, Email: "u@x.com"}}
	reg := auth.NewRegistry(nil)
	fb := &fakeBinder{reg: reg, role: role}

	e := echo.New()
	e.GET("/", d.Home, middleware.Authenticate(fs, reg, fb))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, withToken(httptest.NewRequest(http.MethodGet, "/", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out homeBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHomeCountsPerRole(t *testing.T) {
	db := testutil.DB(t)
	views := NewViews(repository.NewStore(db), fallback.Reporter{Log: testutil.Logger()}, nil, testutil.Logger())
	d := &DashboardHandler{Counters: views.Counters(), Routes: guard.DefaultTable(), Reporter: fallback.Reporter{Log: testutil.Logger()}}

	admin := home(t, d, auth.RoleAdmin)
	assert.Len(t, admin.Counts, 11)
	assert.Equal(t, countEntry{Count: 0, Source: fallback.Live}, admin.Counts["residents"])

	resident := home(t, d, auth.RoleResident)
	for _, hidden := range []string{"residents", "staff", "wings", "properties"} {
		assert.NotContains(t, resident.Counts, hidden)
	}
	assert.Contains(t, resident.Counts, "notices")
}

func TestHomeCountFallsBackPerView(t *testing.T) {
	ok := Counter{View: "notices", Route: "/notices", Count: func(context.Context) (int, error) { return 2, nil }, SampleLen: 3}
	broken := Counter{View: "payments", Route: "/payments", Count: func(context.Context) (int, error) { return 0, errors.New("down") }, SampleLen: len(sample.Payments())}
	d := &DashboardHandler{Counters: []Counter{ok, broken}, Routes: guard.DefaultTable()}

	out := home(t, d, auth.RoleStaff)
	assert.Equal(t, countEntry{Count: 2, Source: fallback.Live}, out.Counts["notices"])
	assert.Equal(t, countEntry{Count: len(sample.Payments()), Source: fallback.Fallback}, out.Counts["payments"])
}

func TestHealth(t *testing.T) {
	e := echo.New()
	db := testutil.DB(t)
	e.GET("/healthz", Health(db))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.JSONEq(t, `{"status":"ok","db":"up"}`, rec.Body.String())

	require.NoError(t, db.Close())
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","db":"down"}`, rec.Body.String())
}
