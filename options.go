package fitgo

import (
	"log/slog"

	"github.com/hupe1980/fitgo/regress"
)

type options struct {
	solver           regress.Solver
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Fitter constructor behavior.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. solver-specific constructor variants).
type Option func(*options)

// WithSolver configures the least-squares solver used by Fit.
//
// If nil is passed, regress.NormalEquation is used.
func WithSolver(s regress.Solver) Option {
	return func(o *options) {
		if s == nil {
			s = regress.NormalEquation{}
		}
		o.solver = s
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fitgo.BasicMetricsCollector{}
//	fitter, _ := fitgo.New(fitgo.WithMetricsCollector(metrics))
//	// ... use fitter ...
//	stats := metrics.GetStats()
//	fmt.Printf("Fits: %d, Avg latency: %dns\n", stats.FitCount, stats.FitAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fitgo.NewJSONLogger(slog.LevelInfo)
//	fitter, _ := fitgo.New(fitgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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
		solver:           regress.NormalEquation{},
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
