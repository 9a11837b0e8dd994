// Package session is the single point of truth for "is there a signed-in
// identity right now". It wraps the backend auth primitives (accounts,
// refresh tokens, signed access tokens) and notifies listeners of every
// session transition.
package session

import (
	"encoding/json"
	"time"
)

// Session is the identity issued by the backend on sign-in. The auth layer
// only observes it.
type Session struct {
	ID       string         `json:"id"`
	UserID   int64          `json:"user_id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"metadata"`
}

// MetaString returns Metadata[key] when it is a string.
func (s *Session) MetaString(key string) (string, bool) {
	if s == nil || s.Metadata == nil {
		return "", false
	}
	v, ok := s.Metadata[key].(string)
	return v, ok
}

// parseMetadata decodes the users.metadata document. Anything that is not a
// JSON object yields an empty map.
func parseMetadata(raw string) map[string]any {
	out := map[string]any{}
	if raw == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

// EventKind names a session transition.
type EventKind int

const (
	SignedIn EventKind = iota + 1
	SignedOut
	TokenRefreshed
)

func (k EventKind) String() string {
	switch k {
	case SignedIn:
		return "signed_in"
	case SignedOut:
		return "signed_out"
	case TokenRefreshed:
		return "token_refreshed"
	}
	return "unknown"
}

// Event is one session transition. Seq increases by one per published event
// across the whole store. Session is nil for SignedOut.
type Event struct {
	Seq       uint64
	Kind      EventKind
	SessionID string
	UserID    int64
	Session   *Session
	At        time.Time
}

// Listener receives session events.
type Listener func(Event)
