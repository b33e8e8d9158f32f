package fitgo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fitgo/dataset"
	"github.com/hupe1980/fitgo/regress"
)

func seedPtr(s int64) *int64 { return &s }

func TestFitter(t *testing.T) {
	ctx := context.Background()

	t.Run("RecoversNoiselessLine", func(t *testing.T) {
		gen, err := dataset.NewGenerator(func(o *dataset.Options) {
			o.Slope = 2.5
			o.Intercept = -0.75
			o.NoiseSigma = 0
			o.Seed = seedPtr(1)
		})
		require.NoError(t, err)
		ds := gen.Generate()

		fitter, err := New()
		require.NoError(t, err)

		model, err := fitter.Fit(ctx, ds.X, ds.Y)
		require.NoError(t, err)

		assert.InDelta(t, 2.5, model.Coefficients.Slope, 1e-9)
		assert.InDelta(t, -0.75, model.Coefficients.Intercept, 1e-9)
		assert.Equal(t, ds.Len(), model.N)
		assert.InDelta(t, 1.0, model.R2, 1e-9)
		assert.Equal(t, "normal-equation", model.Solver)
	})

	t.Run("NoisyFitIsClose", func(t *testing.T) {
		gen, err := dataset.NewGenerator(func(o *dataset.Options) {
			o.Seed = seedPtr(42)
		})
		require.NoError(t, err)
		ds := gen.Generate()

		fitter, err := New()
		require.NoError(t, err)

		model, err := fitter.Fit(ctx, ds.X, ds.Y)
		require.NoError(t, err)

		// y = x + N(0, 1) over [0, 10] with 100 samples.
		assert.InDelta(t, 1.0, model.Coefficients.Slope, 0.2)
		assert.InDelta(t, 0.0, model.Coefficients.Intercept, 1.0)
		assert.Greater(t, model.R2, 0.8)
	})

	t.Run("DeterministicForSameSeed", func(t *testing.T) {
		fit := func(seed int64) *Model {
			gen, err := dataset.NewGenerator(func(o *dataset.Options) {
				o.Seed = seedPtr(seed)
			})
			require.NoError(t, err)
			ds := gen.Generate()

			fitter, err := New()
			require.NoError(t, err)

			model, err := fitter.Fit(ctx, ds.X, ds.Y)
			require.NoError(t, err)
			return model
		}

		first := fit(7)
		second := fit(7)
		assert.Equal(t, first.Coefficients, second.Coefficients)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		fitter, err := New()
		require.NoError(t, err)

		_, err = fitter.Fit(ctx, []float64{1, 2, 3}, []float64{1, 2})
		require.Error(t, err)

		var mismatch *ErrDimensionMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 3, mismatch.XLen)
		assert.Equal(t, 2, mismatch.YLen)
	})

	t.Run("TooFewSamples", func(t *testing.T) {
		fitter, err := New()
		require.NoError(t, err)

		_, err = fitter.Fit(ctx, []float64{1, 2}, []float64{1, 2})
		require.Error(t, err)

		var few *ErrTooFewSamples
		require.ErrorAs(t, err, &few)
		assert.Equal(t, 2, few.N)
	})

	t.Run("SingularInput", func(t *testing.T) {
		// All x-values identical: the design matrix has rank 1.
		x := []float64{3, 3, 3, 3}
		y := []float64{1, 2, 3, 4}

		fitter, err := New()
		require.NoError(t, err)

		_, err = fitter.Fit(ctx, x, y)
		require.Error(t, err)

		var singular *ErrSingularMatrix
		require.ErrorAs(t, err, &singular)

		// The subpackage error stays reachable through Unwrap.
		var inner *regress.ErrSingular
		assert.True(t, errors.As(err, &inner))
	})

	t.Run("FitSynthetic", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		fitter, err := New(WithMetricsCollector(metrics))
		require.NoError(t, err)

		ds, model, err := fitter.FitSynthetic(ctx, func(o *dataset.Options) {
			o.N = 50
			o.Slope = -1.5
			o.Intercept = 4
			o.NoiseSigma = 0
			o.Seed = seedPtr(3)
		})
		require.NoError(t, err)

		assert.Equal(t, 50, ds.Len())
		assert.InDelta(t, -1.5, model.Coefficients.Slope, 1e-9)
		assert.InDelta(t, 4.0, model.Coefficients.Intercept, 1e-9)

		stats := metrics.GetStats()
		assert.Equal(t, int64(1), stats.GenerateCount)
		assert.Equal(t, int64(50), stats.GenerateSamples)
		assert.Equal(t, int64(1), stats.FitCount)
	})

	t.Run("FitSyntheticRejectsBadOptions", func(t *testing.T) {
		fitter, err := New()
		require.NoError(t, err)

		_, _, err = fitter.FitSynthetic(ctx, func(o *dataset.Options) {
			o.N = 1
		})
		require.Error(t, err)
	})

	t.Run("MetricsAndLogging", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}

		fitter, err := New(
			WithMetricsCollector(metrics),
			WithLogger(NoopLogger()),
			WithSolver(regress.QR{}),
		)
		require.NoError(t, err)

		gen, err := dataset.NewGenerator(func(o *dataset.Options) {
			o.Seed = seedPtr(1)
		})
		require.NoError(t, err)
		ds := gen.Generate()

		_, err = fitter.Fit(ctx, ds.X, ds.Y)
		require.NoError(t, err)

		_, err = fitter.Fit(ctx, []float64{1, 2}, []float64{1, 2})
		require.Error(t, err)

		stats := metrics.GetStats()
		assert.Equal(t, int64(2), stats.FitCount)
		assert.Equal(t, int64(1), stats.FitErrors)
	})
}
