// Package fitgo provides closed-form least-squares line fitting.
//
// This file implements the fluent builder API for creating and configuring Fitter instances.
// The builder is immutable - each method returns a new builder with the updated configuration.
package fitgo

import (
	"github.com/hupe1980/fitgo/regress"
)

// Linear creates a new linear-fit builder.
//
// The builder is immutable - each method returns a new builder with the updated
// configuration. This ensures thread-safety and prevents accidental state sharing.
//
// Example:
//
//	fitter, err := fitgo.Linear().
//	    QR().
//	    Logger(fitgo.NewTextLogger(slog.LevelDebug)).
//	    Build()
func Linear() LinearBuilder {
	return LinearBuilder{
		solver: regress.NormalEquation{},
	}
}

// LinearBuilder is an immutable fluent builder for creating Fitter instances.
// Each method returns a new builder with the updated configuration.
type LinearBuilder struct {
	solver  regress.Solver
	logger  *Logger
	metrics MetricsCollector
}

// NormalEquation sets the solver to the closed-form normal equation,
// x = (AᵗA)⁻¹Aᵗy. This is the default.
func (b LinearBuilder) NormalEquation() LinearBuilder {
	b.solver = regress.NormalEquation{}
	return b
}

// QR sets the solver to QR-based least squares.
// QR avoids forming AᵗA and is numerically safer on ill-conditioned inputs.
func (b LinearBuilder) QR() LinearBuilder {
	b.solver = regress.QR{}
	return b
}

// Solver sets a custom least-squares solver.
func (b LinearBuilder) Solver(s regress.Solver) LinearBuilder {
	b.solver = s
	return b
}

// Logger sets the structured logger for operation tracing.
func (b LinearBuilder) Logger(l *Logger) LinearBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b LinearBuilder) Metrics(mc MetricsCollector) LinearBuilder {
	b.metrics = mc
	return b
}

// Build creates the Fitter instance.
func (b LinearBuilder) Build() (*Fitter, error) {
	var fitgoOpts []Option
	if b.solver != nil {
		fitgoOpts = append(fitgoOpts, WithSolver(b.solver))
	}
	if b.logger != nil {
		fitgoOpts = append(fitgoOpts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		fitgoOpts = append(fitgoOpts, WithMetricsCollector(b.metrics))
	}

	return New(fitgoOpts...)
}

// MustBuild creates the Fitter instance, panicking on error.
func (b LinearBuilder) MustBuild() *Fitter {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
