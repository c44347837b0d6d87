package repository

import "time"

// Metrics is the instrumentation boundary for the pipeline. Implemented
// by pkg/metrics; a no-op stand-in is fine for tests.
type Metrics interface {
	RecordFetch(source, status string)
	RecordError(kind string)
	RecordLastObservation(date time.Time, value float64)
	RecordSeriesLength(n int)
	RecordStageLatency(stage string, seconds float64)
}
