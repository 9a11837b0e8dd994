package auth

import (
	"sync"
	"time"

	"github.com/harshbadhann2/society-home-connect/internal/metrics"
)

// Registry holds one Context per client session.
type Registry struct {
	mu       sync.Mutex
	contexts map[string]*Context
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewRegistry(m *metrics.Metrics) *Registry {
	return &Registry{contexts: make(map[string]*Context), metrics: m, now: time.Now}
}

// Get returns the context of sessionID and marks it as recently used.
func (r *Registry) Get(sessionID string) (*Context, bool) {
	r.mu.Lock()
	c, ok := r.contexts[sessionID]
	r.mu.Unlock()
	if ok {
		c.touch(r.now())
	}
	return c, ok
}

// Ensure returns the context of sessionID, creating it when missing.
func (r *Registry) Ensure(sessionID string) *Context {
	r.mu.Lock()
	c, ok := r.contexts[sessionID]
	if !ok {
		c = NewContext()
		r.contexts[sessionID] = c
	}
	n := len(r.contexts)
	r.mu.Unlock()
	c.touch(r.now())
	r.metrics.SetActiveContexts(n)
	return c
}

// Remove drops the context of sessionID.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	delete(r.contexts, sessionID)
	n := len(r.contexts)
	r.mu.Unlock()
	r.metrics.SetActiveContexts(n)
}

// Len returns the number of held contexts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contexts)
}

// PruneIdle removes contexts not used for longer than maxIdle and returns
// how many were removed. Sessions that expire without signing out are only
// ever released this way.
func (r *Registry) PruneIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)
	r.mu.Lock()
	removed := 0
	for sid, c := range r.contexts {
		if c.idleSince().Before(cutoff) {
			delete(r.contexts, sid)
			removed++
		}
	}
	n := len(r.contexts)
	r.mu.Unlock()
	r.metrics.SetActiveContexts(n)
	return removed
}
