package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/harshbadhann2/society-home-connect/internal/auth"
	"github.com/harshbadhann2/society-home-connect/internal/session"
)

// Cookie names used by browser clients. API clients send the access token
// as a Bearer header instead.
const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// Keys under which Authenticate stores request identity in echo.Context.
const (
	keySession   = "session"
	keyAuthState = "auth_state"
)

// AccessToken extracts the access token from the Authorization header or,
// failing that, the access cookie.
func AccessToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if ck, err := r.Cookie(AccessCookie); err == nil {
		return ck.Value
	}
	return ""
}

// SessionFrom returns the session resolved for this request, or nil.
func SessionFrom(c echo.Context) *session.Session {
	s, _ := c.Get(keySession).(*session.Session)
	return s
}

// StateFrom returns the auth state resolved for this request. Requests that
// did not pass through Authenticate read as signed out.
func StateFrom(c echo.Context) auth.State {
	if st, ok := c.Get(keyAuthState).(auth.State); ok {
		return st
	}
	return auth.State{Status: auth.StatusReady}
}

// userID identifies the caller for rate-limit keys: "guest" when nobody is
// signed in.
func userID(c echo.Context) string {
	if s := SessionFrom(c); s != nil {
		return strconv.FormatInt(s.UserID, 10)
	}
	return "guest"
}
