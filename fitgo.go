package fitgo

import (
	"context"
	"time"

	"github.com/hupe1980/fitgo/dataset"
	"github.com/hupe1980/fitgo/regress"
)

// Model is the result of fitting a line to a sample set.
type Model struct {
	// Coefficients holds the fitted slope and intercept.
	Coefficients regress.Coefficients `json:"coefficients"`

	// N is the number of samples the model was fitted on.
	N int `json:"n"`

	// R2 is the coefficient of determination on the training samples.
	R2 float64 `json:"r2"`

	// Solver names the solver that produced the coefficients.
	Solver string `json:"solver"`
}

// Fitter fits straight lines to paired samples using a configurable
// least-squares solver.
//
// A Fitter is safe for concurrent use.
type Fitter struct {
	solver  regress.Solver
	logger  *Logger
	metrics MetricsCollector
}

// New creates a new Fitter.
//
// With no options the Fitter solves via the normal equation, logs nothing and
// collects no metrics. Use the fluent Linear() builder for a more discoverable
// configuration surface.
func New(optFns ...Option) (*Fitter, error) {
	opts := applyOptions(optFns)

	return &Fitter{
		solver:  opts.solver,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}, nil
}

// Fit estimates slope and intercept for the samples (x[i], y[i]).
//
// x and y must have equal length and more than two elements. Degenerate inputs
// (for example, all x-values identical) yield an *ErrSingularMatrix.
func (f *Fitter) Fit(ctx context.Context, x, y []float64) (*Model, error) {
	start := time.Now()

	coef, err := regress.Fit(x, y, f.solver)
	duration := time.Since(start)

	f.logger.LogFit(ctx, f.solver.Name(), len(x), duration, err)
	f.metrics.RecordFit(len(x), duration, err)

	if err != nil {
		return nil, translateError(err)
	}

	return &Model{
		Coefficients: coef,
		N:            len(x),
		R2:           coef.RSquared(x, y),
		Solver:       f.solver.Name(),
	}, nil
}

// FitSynthetic generates a synthetic sample set and fits it in one call,
// the classic end-to-end demonstration run. The generated dataset is
// returned alongside the model so it can be reported or published.
func (f *Fitter) FitSynthetic(ctx context.Context, optFns ...func(o *dataset.Options)) (*dataset.Dataset, *Model, error) {
	start := time.Now()

	gen, err := dataset.NewGenerator(optFns...)
	if err != nil {
		return nil, nil, err
	}
	ds := gen.Generate()

	slope, intercept := gen.TrueLine()
	f.logger.LogGenerate(ctx, ds.Len(), slope, intercept, gen.NoiseSigma())
	f.metrics.RecordGenerate(ds.Len(), time.Since(start))

	model, err := f.Fit(ctx, ds.X, ds.Y)
	if err != nil {
		return nil, nil, err
	}
	return ds, model, nil
}
