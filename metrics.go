package numkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSummarize is called after each Summarize call.
	// count is the number of samples, err is nil if successful.
	RecordSummarize(count int, duration time.Duration, err error)

	// RecordEncode is called after each EncodeHalf call.
	// values is the number of input values, bytes the encoded size.
	RecordEncode(values, bytes int, duration time.Duration, err error)

	// RecordDecode is called after each DecodeHalf call.
	RecordDecode(bytes, values int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSummarize(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordEncode(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SummarizeCount      atomic.Int64
	SummarizeErrors     atomic.Int64
	SummarizeSamples    atomic.Int64
	SummarizeTotalNanos atomic.Int64
	EncodeCount         atomic.Int64
	EncodeErrors        atomic.Int64
	EncodeValues        atomic.Int64
	EncodeBytes         atomic.Int64
	DecodeCount         atomic.Int64
	DecodeErrors        atomic.Int64
	DecodeValues        atomic.Int64
	DecodeBytes         atomic.Int64
}

// RecordSummarize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSummarize(count int, duration time.Duration, err error) {
	b.SummarizeCount.Add(1)
	b.SummarizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SummarizeErrors.Add(1)
		return
	}
	b.SummarizeSamples.Add(int64(count))
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(values, bytes int, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeValues.Add(int64(values))
	b.EncodeBytes.Add(int64(bytes))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(bytes, values int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	if err != nil {
		b.DecodeErrors.Add(1)
		return
	}
	b.DecodeValues.Add(int64(values))
	b.DecodeBytes.Add(int64(bytes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SummarizeCount:    b.SummarizeCount.Load(),
		SummarizeErrors:   b.SummarizeErrors.Load(),
		SummarizeSamples:  b.SummarizeSamples.Load(),
		SummarizeAvgNanos: b.getAvgSummarizeNanos(),
		EncodeCount:       b.EncodeCount.Load(),
		EncodeErrors:      b.EncodeErrors.Load(),
		EncodeValues:      b.EncodeValues.Load(),
		EncodeBytes:       b.EncodeBytes.Load(),
		DecodeCount:       b.DecodeCount.Load(),
		DecodeErrors:      b.DecodeErrors.Load(),
		DecodeValues:      b.DecodeValues.Load(),
		DecodeBytes:       b.DecodeBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSummarizeNanos() int64 {
	count := b.SummarizeCount.Load()
	if count == 0 {
		return 0
	}
	return b.SummarizeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SummarizeCount    int64
	SummarizeErrors   int64
	SummarizeSamples  int64
	SummarizeAvgNanos int64
	EncodeCount       int64
	EncodeErrors      int64
	EncodeValues      int64
	EncodeBytes       int64
	DecodeCount       int64
	DecodeErrors      int64
	DecodeValues      int64
	DecodeBytes       int64
}

// CompressionRatio returns encoded bytes per raw float32 byte, or 0 if nothing was encoded.
func (s BasicMetricsStats) CompressionRatio() float64 {
	if s.EncodeValues == 0 {
		return 0
	}
	return float64(s.EncodeBytes) / float64(4*s.EncodeValues)
}
