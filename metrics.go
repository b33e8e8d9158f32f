package fitgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordFit is called after each fit operation.
	// n is the sample count, duration the total time taken, err is nil on success.
	RecordFit(n int, duration time.Duration, err error)

	// RecordGenerate is called after each synthetic dataset generation.
	RecordGenerate(n int, duration time.Duration)

	// RecordPublish is called after each publish operation.
	// count is the number of artifacts attempted, failed the number that failed.
	RecordPublish(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordGenerate(int, time.Duration)     {}
func (NoopMetricsCollector) RecordPublish(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount         atomic.Int64
	FitErrors        atomic.Int64
	FitTotalNanos    atomic.Int64
	GenerateCount    atomic.Int64
	GenerateSamples  atomic.Int64
	PublishCount     atomic.Int64
	PublishArtifacts atomic.Int64
	PublishFailed    atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(n int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(n int, duration time.Duration) {
	b.GenerateCount.Add(1)
	b.GenerateSamples.Add(int64(n))
}

// RecordPublish implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPublish(count, failed int, duration time.Duration) {
	b.PublishCount.Add(1)
	b.PublishArtifacts.Add(int64(count))
	b.PublishFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:         b.FitCount.Load(),
		FitErrors:        b.FitErrors.Load(),
		FitAvgNanos:      b.getAvgFitNanos(),
		GenerateCount:    b.GenerateCount.Load(),
		GenerateSamples:  b.GenerateSamples.Load(),
		PublishCount:     b.PublishCount.Load(),
		PublishArtifacts: b.PublishArtifacts.Load(),
		PublishFailed:    b.PublishFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFitNanos() int64 {
	count := b.FitCount.Load()
	if count == 0 {
		return 0
	}
	return b.FitTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount         int64
	FitErrors        int64
	FitAvgNanos      int64
	GenerateCount    int64
	GenerateSamples  int64
	PublishCount     int64
	PublishArtifacts int64
	PublishFailed    int64
}
