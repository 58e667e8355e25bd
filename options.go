package numkit

import (
	"log/slog"

	"github.com/hupe1980/numkit/halfbuf"
)

type options struct {
	workers          int
	compression      halfbuf.Compression
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures facade operations.
type Option func(*options)

// WithWorkers sets the number of goroutines Summarize may use.
//
// n == 1 (the default) accumulates sequentially, giving bit-for-bit
// reproducible floating-point sums. n <= 0 uses runtime.GOMAXPROCS(0).
// Larger values split the input and merge partial accumulators in order;
// the floating-point result may then differ from a sequential pass in the
// last bits.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCompression selects the block compression used by EncodeHalf.
// The default is halfbuf.None.
func WithCompression(c halfbuf.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &numkit.BasicMetricsCollector{}
//	s, _ := numkit.Summarize(ctx, samples, numkit.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Summaries: %d, Avg latency: %dns\n", stats.SummarizeCount, stats.SummarizeAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := numkit.NewJSONLogger(slog.LevelDebug)
//	s, _ := numkit.Summarize(ctx, samples, numkit.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          1,
		compression:      halfbuf.None,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
