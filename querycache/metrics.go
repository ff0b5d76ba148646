package querycache

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts cache activity per scope. A nil *Metrics records nothing.
type Metrics struct {
	hits          *prometheus.CounterVec
	misses        *prometheus.CounterVec
	shared        *prometheus.CounterVec
	invalidations *prometheus.CounterVec
}

// NewMetrics creates the cache counters and registers them with reg when reg is not nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	newCounter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "opsledger",
			Subsystem: "querycache",
			Name:      name,
			Help:      help,
		}, []string{"scope"})
	}

	m := &Metrics{
		hits:          newCounter("hits_total", "Queries answered from the cache."),
		misses:        newCounter("misses_total", "Queries that had to be loaded."),
		shared:        newCounter("shared_loads_total", "Loads whose result was shared by concurrent callers."),
		invalidations: newCounter("invalidations_total", "Scope invalidations after mutations."),
	}
	if reg != nil {
		reg.MustRegister(m.hits, m.misses, m.shared, m.invalidations)
	}
	return m
}

func (m *Metrics) hit(scope string) {
	if m != nil {
		m.hits.WithLabelValues(scope).Inc()
	}
}

func (m *Metrics) miss(scope string) {
	if m != nil {
		m.misses.WithLabelValues(scope).Inc()
	}
}

func (m *Metrics) share(scope string) {
	if m != nil {
		m.shared.WithLabelValues(scope).Inc()
	}
}

func (m *Metrics) invalidate(scope string) {
	if m != nil {
		m.invalidations.WithLabelValues(scope).Inc()
	}
}
