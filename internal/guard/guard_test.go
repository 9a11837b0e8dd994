package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harshbadhann2/society-home-connect/internal/auth"
)

func ready(role auth.Role) auth.State {
	st := auth.State{Status: auth.StatusReady}
	if role != auth.RoleNone {
		st.Authenticated = true
		st.Role = role
		st.User = auth.AdminProfile{Kind: role}
	}
	return st
}

func TestDecideLoadingWhileUnknown(t *testing.T) {
	tbl := DefaultTable()
	for _, p := range []string{"/", "/residents", "/notices", "/nowhere"} {
		assert.Equal(t, Loading, tbl.Decide(auth.State{}, p), p)
		assert.Equal(t, Loading, tbl.Decide(auth.State{Status: auth.StatusUnknown, Authenticated: true, Role: auth.RoleAdmin}, p), p)
	}
}

func TestDecideUnauthenticatedRedirectsToLogin(t *testing.T) {
	tbl := DefaultTable()
	for _, p := range []string{"/", "/residents", "/staff", "/complaints", "/profile"} {
		assert.Equal(t, RedirectLogin, tbl.Decide(ready(auth.RoleNone), p), p)
	}
}

func TestDecideAdminOnlyViews(t *testing.T) {
	tbl := DefaultTable()
	for _, p := range []string{"/residents", "/properties", "/wings", "/staff", "/residents/4"} {
		assert.Equal(t, Allow, tbl.Decide(ready(auth.RoleAdmin), p), p)
		assert.Equal(t, RedirectHome, tbl.Decide(ready(auth.RoleStaff), p), p)
		assert.Equal(t, RedirectHome, tbl.Decide(ready(auth.RoleResident), p), p)
	}
}

func TestDecideOpenViews(t *testing.T) {
	tbl := DefaultTable()
	roles := []auth.Role{auth.RoleAdmin, auth.RoleStaff, auth.RoleResident}
	for _, p := range []string{"/", "/amenities", "/parking", "/complaints", "/payments", "/notices", "/deliveries", "/housekeeping", "/profile"} {
		for _, r := range roles {
			assert.Equal(t, Allow, tbl.Decide(ready(r), p), "%s as %s", p, r)
		}
	}
}

func TestResidentCannotReachResidentsView(t *testing.T) {
	d := DefaultTable().Decide(ready(auth.RoleResident), "/residents")
	assert.Equal(t, RedirectHome, d)
	assert.NotEqual(t, Allow, d)
}

func TestCustomTable(t *testing.T) {
	tbl := NewTable(Rule{Path: "/reports/", Allowed: []auth.Role{auth.RoleStaff, auth.RoleAdmin}})
	assert.Equal(t, Allow, tbl.Decide(ready(auth.RoleStaff), "/reports"))
	assert.Equal(t, RedirectHome, tbl.Decide(ready(auth.RoleResident), "/reports/daily"))
	assert.Nil(t, tbl.Allowed("/other"))
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":              "/",
		"/":             "/",
		"/residents":    "/residents",
		"/residents/":   "/residents",
		"/residents/12": "/residents",
		"staff":         "/staff",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalize(in), in)
	}
}
