// Package jobs runs periodic maintenance: purging dead refresh tokens and
// releasing auth contexts of sessions that expired without signing out.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

// TokenPurger deletes refresh tokens that expired or were revoked before
// cutoff.
type TokenPurger interface {
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// ContextPruner drops auth contexts idle for longer than maxIdle.
type ContextPruner interface {
	PruneIdle(maxIdle time.Duration) int
}

// Scheduler owns the cron instance.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	now    func() time.Time
}

func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), logger: logger, now: time.Now}
}

// PurgeTokens registers the refresh token purge on spec. An empty spec
// leaves the job off.
func (s *Scheduler) PurgeTokens(spec string, tokens TokenPurger) error {
	if spec == "" {
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() { s.purgeTokens(tokens) })
	return err
}

func (s *Scheduler) purgeTokens(tokens TokenPurger) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	n, err := tokens.PurgeExpired(ctx, s.now())
	if err != nil {
		s.logger.Error("refresh token purge failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("purged refresh tokens", "count", n)
	}
}

// PruneContexts registers the idle context prune on spec.
func (s *Scheduler) PruneContexts(spec string, maxIdle time.Duration, contexts ContextPruner) error {
	if spec == "" || maxIdle <= 0 {
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() { s.pruneContexts(contexts, maxIdle) })
	return err
}

func (s *Scheduler) pruneContexts(contexts ContextPruner, maxIdle time.Duration) {
	if n := contexts.PruneIdle(maxIdle); n > 0 {
		s.logger.Info("pruned idle auth contexts", "count", n)
	}
}

// Len is the number of registered jobs.
func (s *Scheduler) Len() int { return len(s.cron.Entries()) }

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", s.Len())
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}
