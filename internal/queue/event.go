// Package queue carries session transitions over RabbitMQ: a publisher fed
// by the session store and an audit consumer that appends them to a log file.
package queue

import (
	"time"

	"github.com/harshbadhann2/society-home-connect/internal/session"
)

// SessionEvent is the wire form of a session transition. It never carries
// tokens or profile metadata.
type SessionEvent struct {
	Seq       uint64    `json:"seq"`
	Kind      string    `json:"kind"`
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	At        time.Time `json:"at"`
}

// FromSession maps a store event to its wire form.
func FromSession(ev session.Event) SessionEvent {
	out := SessionEvent{
		Seq:       ev.Seq,
		Kind:      ev.Kind.String(),
		SessionID: ev.SessionID,
		UserID:    ev.UserID,
		At:        ev.At.UTC(),
	}
	if ev.Session != nil {
		out.Email = ev.Session.Email
	}
	return out
}
