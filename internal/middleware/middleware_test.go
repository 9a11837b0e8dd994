package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshbadhann2/society-home-connect/internal/auth"
	"github.com/harshbadhann2/society-home-connect/internal/config"
	"github.com/harshbadhann2/society-home-connect/internal/guard"
	"github.com/harshbadhann2/society-home-connect/internal/session"
)

type fakeSessions map[string]*session.Session

func (f fakeSessions) Current(_ context.Context, tok string) *session.Session { return f[tok] }

// fakeBoot resolves every session to role and counts calls.
type fakeBoot struct {
	reg   *auth.Registry
	role  auth.Role
	calls int
}

func (b *fakeBoot) Bootstrap(_ context.Context, s *session.Session) *auth.Context {
	b.calls++
	c := b.reg.Ensure(s.ID)
	t := c.Begin(s.ID)
	c.Dispatch(auth.Resolved{Ticket: t, Role: b.role, Profile: auth.AdminProfile{Identity: auth.Identity{ID: s.UserID, Email: s.Email}, Kind: b.role}})
	return c
}

func serve(t *testing.T, mw []echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, auth.State) {
	t.Helper()
	e := echo.New()
	var seen auth.State
	h := func(c echo.Context) error {
		seen = StateFrom(c)
		return c.String(http.StatusOK, "ok")
	}
	e.GET("/*", h, mw...)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, seen
}

func TestAccessToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, AccessToken(r))

	r.AddCookie(&http.Cookie{Name: AccessCookie, Value: "from-cookie"})
	assert.Equal(t, "from-cookie", AccessToken(r))

	r.Header.Set("Authorization", "Bearer  from-header ")
	assert.Equal(t, "from-header", AccessToken(r), "header wins over cookie")

	r.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "from-cookie", AccessToken(r))
}

func TestStateFromDefaultsToSignedOut(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	st := StateFrom(c)
	assert.Equal(t, auth.StatusReady, st.Status)
	assert.False(t, st.Authenticated)
	assert.Equal(t, "guest", userID(c))
}

func TestAuthenticateBootstrapsOnce(t *testing.T) {
	reg := auth.NewRegistry(nil)
	boot := &fakeBoot{reg: reg, role: auth.RoleAdmin}
	sessions := fakeSessions{"tok": {ID: "sid", UserID: 4, Email: "a@x.com"}}
	mw := []echo.MiddlewareFunc{Authenticate(sessions, reg, boot)}

	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec, st := serve(t, mw, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, st.Authenticated)
		assert.Equal(t, auth.RoleAdmin, st.Role)
		assert.Equal(t, "sid", st.SessionID)
	}
	assert.Equal(t, 1, boot.calls, "second request reuses the registered context")
}

func TestAuthenticateUnknownTokenIsSignedOut(t *testing.T) {
	reg := auth.NewRegistry(nil)
	boot := &fakeBoot{reg: reg}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale")

	rec, st := serve(t, []echo.MiddlewareFunc{Authenticate(fakeSessions{}, reg, boot)}, req)
	assert.Equal(t, http.StatusOK, rec.Code, "authentication never rejects by itself")
	assert.Equal(t, auth.StatusReady, st.Status)
	assert.False(t, st.Authenticated)
	assert.Zero(t, boot.calls)
}

func guarded(t *testing.T, st auth.State, path string) *httptest.ResponseRecorder {
	t.Helper()
	set := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(keyAuthState, st)
			return next(c)
		}
	}
	rec, _ := serve(t, []echo.MiddlewareFunc{set, Guard(guard.DefaultTable(), nil)}, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGuard(t *testing.T) {
	ready := func(role auth.Role) auth.State {
		return auth.State{Status: auth.StatusReady, Authenticated: true, Role: role, SessionID: "s"}
	}

	rec := guarded(t, auth.State{Status: auth.StatusUnknown, SessionID: "s"}, "/notices")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, RetryAfterSeconds, rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"status":"loading"}`, rec.Body.String())

	rec = guarded(t, auth.State{Status: auth.StatusReady}, "/notices")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, guard.LoginPath, rec.Header().Get("Location"))

	rec = guarded(t, ready(auth.RoleResident), "/residents/3")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, guard.HomePath, rec.Header().Get("Location"))

	rec = guarded(t, ready(auth.RoleAdmin), "/residents")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = guarded(t, ready(auth.RoleResident), "/notices")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	run := func(st auth.State) int {
		set := func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Set(keyAuthState, st)
				return next(c)
			}
		}
		rec, _ := serve(t, []echo.MiddlewareFunc{set, RequireRole(auth.RoleAdmin)}, httptest.NewRequest(http.MethodGet, "/x", nil))
		return rec.Code
	}
	assert.Equal(t, http.StatusUnauthorized, run(auth.State{Status: auth.StatusReady}))
	assert.Equal(t, http.StatusForbidden, run(auth.State{Status: auth.StatusReady, Authenticated: true, Role: auth.RoleStaff}))
	assert.Equal(t, http.StatusOK, run(auth.State{Status: auth.StatusReady, Authenticated: true, Role: auth.RoleAdmin}))
}

func TestCachePayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}, DataSourceHeader: {"live"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`{"items":[]}`))
	require.NoError(t, err)

	status, got, body, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, got)
	assert.Equal(t, `{"items":[]}`, string(body))

	_, _, _, ok = decodePayload(bs[:5])
	assert.False(t, ok)
	_, _, _, ok = decodePayload(append([]byte{0, 0, 0, 200, 0, 0, 1, 0}, 'x'))
	assert.False(t, ok, "header length past the end")
}

func TestCacheKeys(t *testing.T) {
	rc := NewCache(config.CacheConfig{Prefix: "cache"}, nil, nil)
	k1 := rc.key("/residents", "field=status&value=owner")
	k2 := rc.key("/residents", "")
	assert.NotEqual(t, k1, k2)
	assert.Regexp(t, `^cache:route:/residents:[0-9a-f]{40}$`, k1)
	assert.Equal(t, 30*time.Second, rc.cfg.TTL)
}

func TestDisabledCachePassesThrough(t *testing.T) {
	var nilCache *Cache
	for _, rc := range []*Cache{nilCache, NewCache(config.CacheConfig{Enabled: true}, nil, nil)} {
		rec, _ := serve(t, []echo.MiddlewareFunc{rc.Middleware()}, httptest.NewRequest(http.MethodGet, "/residents", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-Cache"))
		rc.Invalidate(context.Background(), "/residents")
	}
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	mw := RateLimit(config.RateLimitConfig{Enabled: true}, nil, nil)
	for range 20 {
		rec, _ := serve(t, []echo.MiddlewareFunc{mw}, httptest.NewRequest(http.MethodGet, "/v1/auth/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, 0, retryAfter(0))
	assert.Equal(t, 0, retryAfter(-5))
	assert.Equal(t, 1, retryAfter(1))
	assert.Equal(t, 2, retryAfter(1001))
}

func TestRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/auth/login")
	assert.Equal(t, "rl:ip:10.0.0.7:user:guest:route:POST /v1/auth/login", rateKey("rl", c))

	c.Set(keySession, &session.Session{ID: "s", UserID: 12})
	assert.Contains(t, rateKey("rl", c), ":user:12:")
}
