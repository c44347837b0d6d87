package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal    *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	lastObservation prometheus.Gauge
	lastObsDate     prometheus.Gauge
	stageLatency    *prometheus.HistogramVec
	seriesLength    prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipcapulse_fetches_total",
				Help: "Total number of series fetches by outcome",
			},
			[]string{"source", "status"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipcapulse_errors_total",
				Help: "Total number of stage errors encountered",
			},
			[]string{"type"},
		),
		lastObservation: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ipcapulse_last_observation_pct",
				Help: "Most recent monthly variation observed",
			},
		),
		lastObsDate: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ipcapulse_last_observation_timestamp",
				Help: "Unix timestamp of the most recent observation",
			},
		),
		stageLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ipcapulse_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		seriesLength: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ipcapulse_series_observations",
				Help: "Number of observations in the canonical series",
			},
		),
	}
}

// RecordFetch records a series fetch attempt.
func (r *Recorder) RecordFetch(source, status string) {
	r.fetchesTotal.WithLabelValues(source, status).Inc()
}

// RecordError records a stage error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastObservation records the most recent observation.
func (r *Recorder) RecordLastObservation(date time.Time, value float64) {
	r.lastObservation.Set(value)
	r.lastObsDate.Set(float64(date.Unix()))
}

// RecordSeriesLength records the canonical series size.
func (r *Recorder) RecordSeriesLength(n int) {
	r.seriesLength.Set(float64(n))
}

// RecordStageLatency records pipeline stage latency in seconds.
func (r *Recorder) RecordStageLatency(stage string, seconds float64) {
	r.stageLatency.WithLabelValues(stage).Observe(seconds)
}
