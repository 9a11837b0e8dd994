package auth

import (
	"sync"
	"time"
)

// Status tells whether the session check behind a State has finished.
type Status int

const (
	// StatusUnknown means a session check or profile enrichment is in flight.
	StatusUnknown Status = iota
	// StatusReady means the state reflects a completed check.
	StatusReady
)

func (s Status) String() string {
	if s == StatusReady {
		return "ready"
	}
	return "unknown"
}

// State is the authorization state of one client.
type State struct {
	Status        Status
	Authenticated bool
	Role          Role
	User          Profile
	SessionID     string
	// Generation increases on every Started and SignedOut action. Only a
	// Resolved action carrying the current generation is applied.
	Generation uint64
}

// Ticket identifies one session check. It is issued by Context.Begin and
// must accompany the check's result.
type Ticket struct {
	Generation uint64
	SessionID  string
}

// Action is a state transition understood by Reduce.
type Action interface {
	reduce(State) (State, bool)
}

// Started records that a session check for SessionID began. Re-checking the
// session the state is already authenticated for keeps the current view
// until the new result lands; any other start clears the state.
type Started struct {
	SessionID string
}

// Resolved carries the outcome of the check identified by Ticket.
type Resolved struct {
	Ticket  Ticket
	Role    Role
	Profile Profile
}

// SignedOut resets the state to unauthenticated and invalidates every
// outstanding ticket.
type SignedOut struct{}

func (a Started) reduce(s State) (State, bool) {
	gen := s.Generation + 1
	if s.Status == StatusReady && s.Authenticated && s.SessionID == a.SessionID {
		s.Generation = gen
		return s, true
	}
	return State{Status: StatusUnknown, SessionID: a.SessionID, Generation: gen}, true
}

func (a Resolved) reduce(s State) (State, bool) {
	if a.Ticket.Generation != s.Generation || a.Ticket.SessionID != s.SessionID {
		return s, false
	}
	return State{
		Status:        StatusReady,
		Authenticated: true,
		Role:          a.Role,
		User:          a.Profile,
		SessionID:     s.SessionID,
		Generation:    s.Generation,
	}, true
}

func (SignedOut) reduce(s State) (State, bool) {
	return State{Status: StatusReady, Generation: s.Generation + 1}, true
}

// Reduce applies a to s. The boolean is false when a was discarded.
func Reduce(s State, a Action) (State, bool) {
	return a.reduce(s)
}

// Context holds the State of one client for the lifetime of its session.
// Dispatch is the only way to change it; reads go through Snapshot.
type Context struct {
	mu       sync.RWMutex
	state    State
	lastSeen time.Time
}

// NewContext returns a context in the initial {Unknown, false, none, nil}
// state.
func NewContext() *Context {
	return &Context{lastSeen: time.Now()}
}

// Snapshot returns the current state.
func (c *Context) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Dispatch applies a and returns the resulting state and whether a took
// effect.
func (c *Context) Dispatch(a Action) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, applied := Reduce(c.state, a)
	if applied {
		c.state = next
	}
	return c.state, applied
}

// Begin dispatches Started and returns the ticket for the new check.
func (c *Context) Begin(sessionID string) Ticket {
	st, _ := c.Dispatch(Started{SessionID: sessionID})
	return Ticket{Generation: st.Generation, SessionID: sessionID}
}

func (c *Context) touch(now time.Time) {
	c.mu.Lock()
	c.lastSeen = now
	c.mu.Unlock()
}

func (c *Context) idleSince() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastSeen
}
