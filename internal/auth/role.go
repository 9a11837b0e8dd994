// Package auth turns sessions into the per-client authorization state the
// dashboard renders from: the caller's role, a display profile and whether
// anyone is signed in at all.
package auth

import "github.com/harshbadhann2/society-home-connect/internal/session"

// Role is the coarse permission class that gates views.
type Role string

const (
	RoleNone     Role = ""
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleResident Role = "resident"
)

// DefaultRole is assigned to authenticated sessions whose metadata does not
// name a known role.
const DefaultRole = RoleResident

// Valid reports whether r is one of the three assignable roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleResident:
		return true
	}
	return false
}

// ResolveRole reads the "role" metadata field of s. A missing, non-string or
// unrecognised value resolves to DefaultRole, so an unknown role string
// silently gets the lowest privilege. A nil session has no role.
func ResolveRole(s *session.Session) Role {
	if s == nil {
		return RoleNone
	}
	v, ok := s.MetaString("role")
	if !ok {
		return DefaultRole
	}
	if r := Role(v); r.Valid() {
		return r
	}
	return DefaultRole
}
