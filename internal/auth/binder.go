package auth

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/harshbadhann2/society-home-connect/internal/metrics"
	"github.com/harshbadhann2/society-home-connect/internal/session"
)

// Binder keeps the Registry in step with the session store: every session
// transition becomes a dispatch on the affected client's Context.
type Binder struct {
	reg      *Registry
	enricher *Enricher
	log      *slog.Logger
	metrics  *metrics.Metrics
	timeout  time.Duration
	flight   singleflight.Group
}

func NewBinder(reg *Registry, enricher *Enricher, logger *slog.Logger, m *metrics.Metrics) *Binder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Binder{
		reg:      reg,
		enricher: enricher,
		log:      logger.With("component", "auth"),
		metrics:  m,
		timeout:  5 * time.Second,
	}
}

// Subscriber is the part of the session store the binder listens to.
type Subscriber interface {
	OnChange(session.Listener) (unsubscribe func())
}

// Listen subscribes the binder to src. The returned function stops it.
func (b *Binder) Listen(src Subscriber) (stop func()) {
	return src.OnChange(func(ev session.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()
		b.Handle(ctx, ev)
	})
}

// Handle applies one session event.
func (b *Binder) Handle(ctx context.Context, ev session.Event) {
	switch ev.Kind {
	case session.SignedIn, session.TokenRefreshed:
		if ev.Session == nil {
			return
		}
		c := b.reg.Ensure(ev.SessionID)
		b.resolve(ctx, c, c.Begin(ev.SessionID), ev.Session)
	case session.SignedOut:
		b.SignOut(ev.SessionID)
	}
}

// Bootstrap returns the context of s, resolving it synchronously unless the
// registry already holds a completed one. Concurrent calls for one session
// share a single resolution.
func (b *Binder) Bootstrap(ctx context.Context, s *session.Session) *Context {
	if c, ok := b.reg.Get(s.ID); ok && c.Snapshot().Status == StatusReady {
		return c
	}
	v, _, _ := b.flight.Do(s.ID, func() (any, error) {
		c := b.reg.Ensure(s.ID)
		if st := c.Snapshot(); st.Status == StatusReady && st.Authenticated {
			return c, nil
		}
		// Shared by every waiter, so one caller hanging up must not cut it short.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
		defer cancel()
		b.resolve(fctx, c, c.Begin(s.ID), s)
		return c, nil
	})
	return v.(*Context)
}

// SignOut resets and drops the context of sessionID. It is safe to call for
// sessions the registry does not hold.
func (b *Binder) SignOut(sessionID string) {
	if c, ok := b.reg.Get(sessionID); ok {
		c.Dispatch(SignedOut{})
		b.reg.Remove(sessionID)
	}
}

func (b *Binder) resolve(ctx context.Context, c *Context, t Ticket, s *session.Session) {
	role := ResolveRole(s)
	p := b.enricher.Enrich(ctx, s, role)
	if _, applied := c.Dispatch(Resolved{Ticket: t, Role: role, Profile: p}); !applied {
		b.metrics.StaleEnrichment()
		b.log.Debug("discarded stale enrichment", "session_id", t.SessionID, "generation", t.Generation)
		return
	}
	b.log.Debug("auth state resolved", "session_id", t.SessionID, "role", string(role))
}
