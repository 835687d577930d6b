// Package metrics provides Prometheus metrics for the decile ranking engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ranking metrics, labeled by algorithm (heap, quickselect, online)
	rankingDuration *prometheus.HistogramVec
	playersRanked   *prometheus.CounterVec
	cutoffSnapshots prometheus.Counter

	// Roster and stream state
	rosterSize    prometheus.Gauge
	streamBacklog prometheus.Gauge

	// Queue metrics
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueEnqueues      prometheus.Counter
	queueDequeues      prometheus.Counter
	queueEnqueueErrors prometheus.Counter

	// Harness and error tracking
	simulationRuns    prometheus.Counter
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "decile",
		subsystem:        "ranking",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rankingDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "duration_milliseconds",
			Help:      "Histogram of ranking run duration in milliseconds by algorithm",
			Buckets:   m.histogramBuckets,
		},
		[]string{"algorithm"},
	)

	m.playersRanked = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "players_ranked_total",
			Help:      "Total number of players fed through each algorithm",
		},
		[]string{"algorithm"},
	)

	m.cutoffSnapshots = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cutoff_snapshots_total",
		Help:      "Total number of cutoff checkpoints recorded by the online engine",
	})

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Size of the most recently generated roster",
	})

	m.streamBacklog = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stream_backlog",
		Help:      "Players remaining in the stream being consumed",
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_size",
		Help:      "Current size of the player queue",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_capacity",
		Help:      "Configured capacity of the player queue",
	})

	m.queueEnqueues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_enqueues_total",
		Help:      "Total number of players enqueued",
	})

	m.queueDequeues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_dequeues_total",
		Help:      "Total number of players dequeued",
	})

	m.queueEnqueueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_enqueue_errors_total",
		Help:      "Total number of rejected enqueues",
	})

	m.simulationRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "simulation_runs_total",
		Help:      "Total number of completed simulation runs",
	})

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component and type",
		},
		[]string{"component", "error_type"},
	)
}

// RecordRankingDuration records a ranking run duration in milliseconds.
func RecordRankingDuration(algorithm string, durationMs float64) {
	globalManager.rankingDuration.WithLabelValues(algorithm).Observe(durationMs)
}

// RecordPlayersRanked adds to the per-algorithm ranked player counter.
func RecordPlayersRanked(algorithm string, count int) {
	globalManager.playersRanked.WithLabelValues(algorithm).Add(float64(count))
}

// RecordCutoffSnapshots adds to the cutoff checkpoint counter.
func RecordCutoffSnapshots(count int) {
	globalManager.cutoffSnapshots.Add(float64(count))
}

// UpdateRosterSize sets the roster size gauge.
func UpdateRosterSize(size int) {
	globalManager.rosterSize.Set(float64(size))
}

// UpdateStreamBacklog sets the stream backlog gauge.
func UpdateStreamBacklog(remaining int) {
	globalManager.streamBacklog.Set(float64(remaining))
}

// UpdateQueueSize sets the current queue size.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the configured queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() {
	globalManager.queueEnqueues.Inc()
}

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() {
	globalManager.queueDequeues.Inc()
}

// RecordQueueEnqueueError increments the rejected-enqueue counter.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// RecordSimulationRun increments the completed simulation run counter.
func RecordSimulationRun() {
	globalManager.simulationRuns.Inc()
}

// RecordErrorByComponent records an error for a specific component.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom registry for HTTP exposure.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
