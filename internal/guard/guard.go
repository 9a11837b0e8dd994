// Package guard decides, from a client's auth state, whether a view may be
// rendered.
package guard

import (
	"slices"
	"strings"

	"github.com/harshbadhann2/society-home-connect/internal/auth"
)

// Decision is the outcome of evaluating one route for one auth state.
type Decision int

const (
	// Loading means the session check has not finished; render a placeholder.
	Loading Decision = iota
	// RedirectLogin sends unauthenticated clients to the login view.
	RedirectLogin
	// RedirectHome sends clients whose role is not allowed to the dashboard.
	RedirectHome
	// Allow renders the view.
	Allow
)

func (d Decision) String() string {
	switch d {
	case Loading:
		return "loading"
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	case Allow:
		return "allow"
	}
	return "unknown"
}

const (
	HomePath  = "/"
	LoginPath = "/login"
)

// Rule gates one view path. An empty Allowed list admits every
// authenticated role.
type Rule struct {
	Path    string
	Allowed []auth.Role
}

// Table maps view paths to rules. Paths without a rule admit any
// authenticated role.
type Table struct {
	rules map[string][]auth.Role
}

func NewTable(rules ...Rule) *Table {
	t := &Table{rules: make(map[string][]auth.Role, len(rules))}
	for _, r := range rules {
		t.rules[normalize(r.Path)] = r.Allowed
	}
	return t
}

// DefaultTable is the dashboard's route table: residents, properties, wings
// and staff are admin only, everything else is open to any signed-in role.
func DefaultTable() *Table {
	adminOnly := []auth.Role{auth.RoleAdmin}
	return NewTable(
		Rule{Path: HomePath},
		Rule{Path: "/residents", Allowed: adminOnly},
		Rule{Path: "/properties", Allowed: adminOnly},
		Rule{Path: "/wings", Allowed: adminOnly},
		Rule{Path: "/staff", Allowed: adminOnly},
	)
}

// Allowed returns the allow-list for path, nil meaning any authenticated role.
func (t *Table) Allowed(path string) []auth.Role {
	return t.rules[normalize(path)]
}

// Decide evaluates path for st. It is pure; callers re-run it on every
// request.
func (t *Table) Decide(st auth.State, path string) Decision {
	if st.Status != auth.StatusReady {
		return Loading
	}
	if !st.Authenticated {
		return RedirectLogin
	}
	allowed := t.Allowed(path)
	if len(allowed) > 0 && !slices.Contains(allowed, st.Role) {
		return RedirectHome
	}
	return Allow
}

// normalize reduces a request path to its view path: "/residents/12/" and
// "/residents" share a rule.
func normalize(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return HomePath
	}
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return "/" + p
}
