package vecstat

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
//	    statHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordStatistic(op string, n int, d time.Duration, err error) {
//	    p.statHistogram.WithLabelValues(op).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordStatistic is called after each statistic. op names the
	// statistic, n is the number of elements in scope, duration is the time
	// taken and err is nil if successful.
	RecordStatistic(op string, n int, duration time.Duration, err error)

	// RecordLookup is called after each label lookup. found is the number
	// of identifiers or labels returned.
	RecordLookup(op string, found int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStatistic(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLookup(string, int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StatisticCount      atomic.Int64
	StatisticErrors     atomic.Int64
	StatisticTotalNanos atomic.Int64
	ElementsScanned     atomic.Int64
	LookupCount         atomic.Int64
	LookupErrors        atomic.Int64
	LookupResults       atomic.Int64
}

// RecordStatistic implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStatistic(_ string, n int, duration time.Duration, err error) {
	b.StatisticCount.Add(1)
	b.StatisticTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StatisticErrors.Add(1)
		return
	}
	b.ElementsScanned.Add(int64(n))
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(_ string, found int, _ time.Duration, err error) {
	b.LookupCount.Add(1)
	if err != nil {
		b.LookupErrors.Add(1)
		return
	}
	b.LookupResults.Add(int64(found))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StatisticCount:    b.StatisticCount.Load(),
		StatisticErrors:   b.StatisticErrors.Load(),
		StatisticAvgNanos: b.getAvgStatisticNanos(),
		ElementsScanned:   b.ElementsScanned.Load(),
		LookupCount:       b.LookupCount.Load(),
		LookupErrors:      b.LookupErrors.Load(),
		LookupResults:     b.LookupResults.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgStatisticNanos() int64 {
	count := b.StatisticCount.Load()
	if count == 0 {
		return 0
	}
	return b.StatisticTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	StatisticCount    int64
	StatisticErrors   int64
	StatisticAvgNanos int64
	ElementsScanned   int64
	LookupCount       int64
	LookupErrors      int64
	LookupResults     int64
}
