package matchgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    rankCounter   prometheus.Counter
//	    rankHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRank(candidates, results int, duration time.Duration, err error) {
//	    p.rankCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordRank is called after each rank operation.
	// candidates is the number of paths scored, results the number returned,
	// duration the total time taken; err is nil if successful.
	RecordRank(candidates, results int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRank(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RankCount      atomic.Int64
	RankErrors     atomic.Int64
	RankTotalNanos atomic.Int64
	ResultsTotal   atomic.Int64
}

// RecordRank implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRank(candidates, results int, duration time.Duration, err error) {
	b.RankCount.Add(1)
	b.RankTotalNanos.Add(duration.Nanoseconds())
	b.ResultsTotal.Add(int64(results))
	if err != nil {
		b.RankErrors.Add(1)
	}
}

// Stats is a point-in-time snapshot of collected metrics.
type Stats struct {
	RankCount    int64
	RankErrors   int64
	RankAvgNanos int64
	ResultsTotal int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() Stats {
	count := b.RankCount.Load()
	s := Stats{
		RankCount:    count,
		RankErrors:   b.RankErrors.Load(),
		ResultsTotal: b.ResultsTotal.Load(),
	}
	if count > 0 {
		s.RankAvgNanos = b.RankTotalNanos.Load() / count
	}
	return s
}
