package traversal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records controller runs. Build it with NewMetrics and attach it
// with WithMetrics; one Metrics may be shared by several controllers.
type Metrics struct {
	// Runs counts finished runs by algorithm and outcome
	// (found, not_found, canceled, error).
	Runs *prometheus.CounterVec
	// Visited observes expanded cells per run.
	Visited *prometheus.HistogramVec
	// PathCost observes the cost of found paths.
	PathCost *prometheus.HistogramVec
	// Duration observes run wall time in seconds, walk included.
	Duration *prometheus.HistogramVec
	// Active is 1 while a run is in progress.
	Active prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_runs_total",
			Help: "Finished traversal runs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		Visited: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_visited_cells",
			Help:    "Cells expanded per run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14), // 1 to 8192
		}, []string{"algorithm"}),
		PathCost: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_path_cost",
			Help:    "Weighted cost of found paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_run_duration_seconds",
			Help:    "Run duration in seconds, walk included",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"algorithm"}),
		Active: f.NewGauge(prometheus.GaugeOpts{
			Name: "gridpath_active_runs",
			Help: "Runs currently searching or walking",
		}),
	}
}

func (m *Metrics) begin() {
	if m == nil {
		return
	}
	m.Active.Inc()
}

func (m *Metrics) finish(r Report) {
	if m == nil {
		return
	}
	m.Active.Dec()
	m.Runs.WithLabelValues(r.Algorithm, r.outcome()).Inc()
	m.Visited.WithLabelValues(r.Algorithm).Observe(float64(r.Result.Visited))
	m.Duration.WithLabelValues(r.Algorithm).Observe(r.Elapsed.Seconds())
	if r.Result.Found {
		m.PathCost.WithLabelValues(r.Algorithm).Observe(float64(r.Result.Cost))
	}
}
