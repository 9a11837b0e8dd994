package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshbadhann2/society-home-connect/internal/database"
	"github.com/harshbadhann2/society-home-connect/internal/fallback"
	"github.com/harshbadhann2/society-home-connect/internal/middleware"
	"github.com/harshbadhann2/society-home-connect/internal/model"
	"github.com/harshbadhann2/society-home-connect/internal/repository"
	"github.com/harshbadhann2/society-home-connect/internal/sample"
	"github.com/harshbadhann2/society-home-connect/internal/testutil"
)

type spyCache struct{ routes []string }

func (s *spyCache) Invalidate(_ context.Context, route string) { s.routes = append(s.routes, route) }

func setup(t *testing.T) (*echo.Echo, *Views, *spyCache, *sql.DB) {
	t.Helper()
	db := testutil.DB(t)
	cache := &spyCache{}
	views := NewViews(repository.NewStore(db), fallback.Reporter{Log: testutil.Logger()}, cache, testutil.Logger())
	e := echo.New()
	for route, h := range map[string]collection{"/residents": views.Residents, "/notices": views.Notices} {
		e.GET(route, h.List)
		e.POST(route, h.Create)
		e.GET(route+"/:id", h.Get)
		e.PUT(route+"/:id", h.Update)
		e.DELETE(route+"/:id", h.Delete)
	}
	return e, views, cache, db
}

type collection interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type listBody[T any] struct {
	View   string          `json:"view"`
	Items  []T             `json:"items"`
	Source fallback.Source `json:"source"`
	Notice string          `json:"notice"`
}

func decodeList[T any](t *testing.T, rec *httptest.ResponseRecorder) listBody[T] {
	t.Helper()
	var out listBody[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestListEmptyTableIsLive(t *testing.T) {
	e, _, _, _ := setup(t)
	rec := do(e, http.MethodGet, "/residents", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "live", rec.Header().Get(middleware.DataSourceHeader))

	body := decodeList[model.Resident](t, rec)
	assert.Equal(t, fallback.Live, body.Source)
	assert.NotNil(t, body.Items)
	assert.Empty(t, body.Items)
	assert.Empty(t, body.Notice)
}

func TestListMissingTableServesSample(t *testing.T) {
	e, _, _, db := setup(t)
	_, err := db.Exec("DROP TABLE residents")
	require.NoError(t, err)

	rec := do(e, http.MethodGet, "/residents", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fallback", rec.Header().Get(middleware.DataSourceHeader))

	body := decodeList[model.Resident](t, rec)
	assert.Equal(t, fallback.Fallback, body.Source)
	assert.Equal(t, sample.Residents(), body.Items)
	assert.NotEmpty(t, body.Notice)
}

func TestListServesSampleWhenDatabaseUnreachable(t *testing.T) {
	// nothing listens on port 1, so every query fails to dial
	db, err := database.Open("u", "p", "127.0.0.1", "1", "society")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	views := NewViews(repository.NewStore(db), fallback.Reporter{Log: testutil.Logger()}, nil, testutil.Logger())
	e := echo.New()
	e.GET("/residents", views.Residents.List)

	rec := do(e, http.MethodGet, "/residents", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fallback", rec.Header().Get(middleware.DataSourceHeader))
	body := decodeList[model.Resident](t, rec)
	assert.Equal(t, fallback.Fallback, body.Source)
	assert.Equal(t, sample.Residents(), body.Items)
	assert.Contains(t, body.Notice, "unreachable")
}

func TestListFilter(t *testing.T) {
	e, _, _, _ := setup(t)
	for _, b := range []string{
		`{"name":"Aarav","status":"owner"}`,
		`{"name":"Priya","status":"tenant"}`,
	} {
		require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/residents", b).Code)
	}

	body := decodeList[model.Resident](t, do(e, http.MethodGet, "/residents?field=status&value=tenant", ""))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Priya", body.Items[0].Name)

	assert.Len(t, decodeList[model.Resident](t, do(e, http.MethodGet, "/residents?limit=1", "")).Items, 1)
}

func TestListRejectsBadQueryBeforeBackend(t *testing.T) {
	e, _, _, db := setup(t)
	require.NoError(t, db.Close())

	rec := do(e, http.MethodGet, "/residents?field=password&value=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown field")

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/residents?limit=0", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/residents?limit=abc", "").Code)
}

func TestCreateValidatesAndInvalidates(t *testing.T) {
	e, _, cache, _ := setup(t)

	rec := do(e, http.MethodPost, "/residents", `{"name":"  ","status":"landlord","email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	for _, msg := range []string{"name is required", "email is not valid", "status must be one of"} {
		assert.Contains(t, rec.Body.String(), msg)
	}
	assert.Empty(t, cache.routes)

	rec = do(e, http.MethodPost, "/residents", `{"name":" Rohan ","email":"ROHAN@X.COM","status":"owner"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var got model.Resident
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Positive(t, got.ID)
	assert.Equal(t, "Rohan", got.Name)
	assert.Equal(t, "rohan@x.com", got.Email)
	assert.Equal(t, []string{"/residents"}, cache.routes)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/residents", `{"name":`).Code)
}

func TestCreateDefaultsResidentStatus(t *testing.T) {
	e, _, _, db := setup(t)
	rec := do(e, http.MethodPost, "/residents", `{"name":"Kabir"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var r model.Resident
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, "owner", r.Status)

	var stored string
	require.NoError(t, db.QueryRow("SELECT status FROM residents WHERE id = ?", r.ID).Scan(&stored))
	assert.Equal(t, "owner", stored)
}

func TestCreateDefaultsNoticePriority(t *testing.T) {
	e, _, _, _ := setup(t)
	rec := do(e, http.MethodPost, "/notices", `{"title":"AGM","content":"Sunday 11 AM"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var n model.Notice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Equal(t, "normal", n.Priority)
}

func TestGetUpdateDelete(t *testing.T) {
	e, _, cache, _ := setup(t)
	rec := do(e, http.MethodPost, "/residents", `{"name":"Sneha","status":"tenant"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var r model.Resident
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	path := "/residents/" + jsonID(r.ID)

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, path, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/residents/abc", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/residents/999", "").Code)

	rec = do(e, http.MethodPut, path, `{"name":"Sneha K","status":"owner"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodPut, "/residents/999", `{"name":"x"}`).Code)

	assert.Equal(t, http.StatusNoContent, do(e, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodDelete, path, "").Code)
	assert.Equal(t, []string{"/residents", "/residents", "/residents"}, cache.routes)
}

func TestMutationOnMissingTableFails(t *testing.T) {
	e, _, cache, db := setup(t)
	_, err := db.Exec("DROP TABLE notices")
	require.NoError(t, err)

	rec := do(e, http.MethodPost, "/notices", `{"title":"t","content":"c"}`)
	// sqlite errors carry no driver code, so the kind is unknown
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "no such table", "driver text stays out of responses")
	assert.Empty(t, cache.routes)
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
