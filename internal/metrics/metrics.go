// Package metrics holds the Prometheus collectors of the dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the auth and data layers. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	SessionEvents    *prometheus.CounterVec
	SessionChecks    *prometheus.CounterVec
	GuardDecisions   *prometheus.CounterVec
	Fallbacks        *prometheus.CounterVec
	StaleEnrichments prometheus.Counter
	ActiveContexts   prometheus.Gauge
}

// New registers and returns collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SessionEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "society_session_events_total",
			Help: "Session transitions published by the session store",
		}, []string{"kind"}),
		SessionChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "society_session_checks_total",
			Help: "Current-session checks by outcome (valid, none)",
		}, []string{"outcome"}),
		GuardDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "society_guard_decisions_total",
			Help: "Route guard decisions by outcome",
		}, []string{"decision"}),
		Fallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "society_fallback_total",
			Help: "Views served from sample data, by view and backend error kind",
		}, []string{"view", "kind"}),
		StaleEnrichments: f.NewCounter(prometheus.CounterOpts{
			Name: "society_stale_enrichments_total",
			Help: "Profile enrichments discarded because a newer session state superseded them",
		}),
		ActiveContexts: f.NewGauge(prometheus.GaugeOpts{
			Name: "society_auth_contexts",
			Help: "Client auth contexts currently held in memory",
		}),
	}
}

func (m *Metrics) SessionEvent(kind string) {
	if m != nil {
		m.SessionEvents.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) SessionCheck(outcome string) {
	if m != nil {
		m.SessionChecks.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) GuardDecision(decision string) {
	if m != nil {
		m.GuardDecisions.WithLabelValues(decision).Inc()
	}
}

func (m *Metrics) Fallback(view, kind string) {
	if m != nil {
		m.Fallbacks.WithLabelValues(view, kind).Inc()
	}
}

func (m *Metrics) StaleEnrichment() {
	if m != nil {
		m.StaleEnrichments.Inc()
	}
}

func (m *Metrics) SetActiveContexts(n int) {
	if m != nil {
		m.ActiveContexts.Set(float64(n))
	}
}
