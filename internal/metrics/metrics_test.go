package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Fallback("residents", "table_missing")
	m.Fallback("residents", "table_missing")
	m.GuardDecision("allow")
	m.StaleEnrichment()
	m.SetActiveContexts(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Fallbacks.WithLabelValues("residents", "table_missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GuardDecisions.WithLabelValues("allow")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StaleEnrichments))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveContexts))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Fallback("x", "y")
		m.SessionEvent("signed_in")
		m.SessionCheck("none")
		m.GuardDecision("allow")
		m.StaleEnrichment()
		m.SetActiveContexts(1)
	})
}
