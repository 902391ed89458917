package inspector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/go-drift/bindings/pkg/bind"
)

var (
	seedsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bindings",
		Name:      "host_seeds_total",
		Help:      "Number of hosts entering two-way mode. Counts every host, including ones whose binding direction makes the seeding write a no-op.",
	})
	changesDetectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bindings",
		Name:      "changes_detected_total",
		Help:      "Number of node-side divergences queued for application.",
	})
	changesAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bindings",
		Name:      "changes_applied_total",
		Help:      "Number of queued changes folded into application data.",
	})
)

// MetricsObserver counts binding activity in Prometheus metrics.
type MetricsObserver struct{}

func (MetricsObserver) HostSeeded()     { seedsTotal.Inc() }
func (MetricsObserver) ChangeDetected() { changesDetectedTotal.Inc() }
func (MetricsObserver) ChangeApplied()  { changesAppliedTotal.Inc() }

// EnableMetrics installs the metrics observer process-wide.
func EnableMetrics() {
	bind.SetObserver(MetricsObserver{})
}
