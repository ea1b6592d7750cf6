package snapshot

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricNamePrefix = "fame_snapshot_"

type Metrics struct {
	generations prometheus.Counter
	failures    prometheus.Counter
	members     prometheus.Gauge
	lastSuccess prometheus.Gauge

	registerOnce sync.Once
}

// Register creates the collectors on registry. It is a no-op for a nil
// registry and after the first call.
func (m *Metrics) Register(registry prometheus.Registerer) {
	if registry == nil {
		return
	}

	m.registerOnce.Do(func() {
		factory := promauto.With(registry)

		m.generations = factory.NewCounter(prometheus.CounterOpts{
			Name: metricNamePrefix + "generations_total",
			Help: "Total number of successful snapshot generations",
		})

		m.failures = factory.NewCounter(prometheus.CounterOpts{
			Name: metricNamePrefix + "failures_total",
			Help: "Total number of failed snapshot generations",
		})

		m.members = factory.NewGauge(prometheus.GaugeOpts{
			Name: metricNamePrefix + "members",
			Help: "Number of members in the last written snapshot",
		})

		m.lastSuccess = factory.NewGauge(prometheus.GaugeOpts{
			Name: metricNamePrefix + "last_success_timestamp_seconds",
			Help: "Unix time of the last successful snapshot generation",
		})
	})
}

func (m *Metrics) observeSuccess(members int, unixSeconds float64) {
	if m == nil || m.generations == nil {
		return
	}

	m.generations.Inc()
	m.members.Set(float64(members))
	m.lastSuccess.Set(unixSeconds)
}

func (m *Metrics) observeFailure() {
	if m == nil || m.failures == nil {
		return
	}

	m.failures.Inc()
}
