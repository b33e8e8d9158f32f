package regress

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

const tol = 1e-9

func TestFit(t *testing.T) {
	solvers := []Solver{NormalEquation{}, QR{}}

	for _, solver := range solvers {
		t.Run(solver.Name(), func(t *testing.T) {
			t.Run("UnitLine", func(t *testing.T) {
				coef, err := Fit([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, solver)
				require.NoError(t, err)
				assert.InDelta(t, 1.0, coef.Slope, tol)
				assert.InDelta(t, 0.0, coef.Intercept, tol)
			})

			t.Run("FlatLine", func(t *testing.T) {
				coef, err := Fit([]float64{0, 1, 2, 3}, []float64{1, 1, 1, 1}, solver)
				require.NoError(t, err)
				assert.InDelta(t, 0.0, coef.Slope, tol)
				assert.InDelta(t, 1.0, coef.Intercept, tol)
			})

			t.Run("NoiselessRoundTrip", func(t *testing.T) {
				want := Coefficients{Slope: -2.5, Intercept: 7.25}

				x := make([]float64, 50)
				y := make([]float64, 50)
				for i := range x {
					x[i] = float64(i) * 0.2
					y[i] = want.Predict(x[i])
				}

				coef, err := Fit(x, y, solver)
				require.NoError(t, err)
				assert.InDelta(t, want.Slope, coef.Slope, tol)
				assert.InDelta(t, want.Intercept, coef.Intercept, tol)
			})

			t.Run("MatchesReferenceOnNoisyData", func(t *testing.T) {
				rng := rand.New(rand.NewSource(4711))

				x := make([]float64, 100)
				y := make([]float64, 100)
				for i := range x {
					x[i] = rng.Float64() * 10
					y[i] = 3*x[i] - 1 + rng.NormFloat64()
				}

				coef, err := Fit(x, y, solver)
				require.NoError(t, err)

				alpha, beta := stat.LinearRegression(x, y, nil, false)
				assert.InDelta(t, beta, coef.Slope, 1e-8)
				assert.InDelta(t, alpha, coef.Intercept, 1e-8)
			})

			t.Run("ConstantXIsSingular", func(t *testing.T) {
				_, err := Fit([]float64{2, 2, 2, 2}, []float64{1, 2, 3, 4}, solver)
				require.Error(t, err)

				var singular *ErrSingular
				require.ErrorAs(t, err, &singular)
			})

			t.Run("Idempotent", func(t *testing.T) {
				x := []float64{0, 1, 2, 3, 4}
				y := []float64{0.1, 0.9, 2.2, 2.8, 4.1}

				first, err := Fit(x, y, solver)
				require.NoError(t, err)
				second, err := Fit(x, y, solver)
				require.NoError(t, err)

				assert.Equal(t, first, second)
			})
		})
	}

	t.Run("NilSolverDefaultsToNormalEquation", func(t *testing.T) {
		coef, err := Fit([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, nil)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, coef.Slope, tol)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := Fit([]float64{1, 2, 3}, []float64{1, 2}, nil)

		var mismatch *ErrDimensionMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 3, mismatch.XLen)
		assert.Equal(t, 2, mismatch.YLen)
	})

	t.Run("TooFewSamples", func(t *testing.T) {
		_, err := Fit([]float64{1, 2}, []float64{1, 2}, nil)

		var few *ErrTooFewSamples
		require.ErrorAs(t, err, &few)
		assert.Equal(t, 2, few.N)
	})
}

func TestSolversAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	x := make([]float64, 64)
	y := make([]float64, 64)
	for i := range x {
		x[i] = float64(i) * 0.5
		y[i] = 0.7*x[i] + 4 + rng.NormFloat64()*0.3
	}

	ne, err := Fit(x, y, NormalEquation{})
	require.NoError(t, err)
	qr, err := Fit(x, y, QR{})
	require.NoError(t, err)

	assert.InDelta(t, ne.Slope, qr.Slope, 1e-8)
	assert.InDelta(t, ne.Intercept, qr.Intercept, 1e-8)
}

func TestDesignMatrix(t *testing.T) {
	t.Run("Shape", func(t *testing.T) {
		a, err := DesignMatrix([]float64{1.5, 2.5, 3.5})
		require.NoError(t, err)

		rows, cols := a.Dims()
		assert.Equal(t, 3, rows)
		assert.Equal(t, 2, cols)

		for i, want := range []float64{1.5, 2.5, 3.5} {
			assert.Equal(t, 1.0, a.At(i, 0))
			assert.Equal(t, want, a.At(i, 1))
		}
	})

	t.Run("RejectsUnderdetermined", func(t *testing.T) {
		_, err := DesignMatrix([]float64{1, 2})

		var few *ErrTooFewSamples
		require.ErrorAs(t, err, &few)
	})
}

func TestCoefficients(t *testing.T) {
	coef := Coefficients{Slope: 2, Intercept: 1}

	t.Run("Predict", func(t *testing.T) {
		assert.Equal(t, 5.0, coef.Predict(2))
	})

	t.Run("Line", func(t *testing.T) {
		assert.Equal(t, []float64{1, 3, 5}, coef.Line([]float64{0, 1, 2}))
	})

	t.Run("Residuals", func(t *testing.T) {
		res := coef.Residuals([]float64{0, 1}, []float64{1.5, 2.5})
		assert.InDelta(t, 0.5, res[0], tol)
		assert.InDelta(t, -0.5, res[1], tol)
	})

	t.Run("RSquaredPerfectFit", func(t *testing.T) {
		x := []float64{0, 1, 2, 3}
		assert.InDelta(t, 1.0, coef.RSquared(x, coef.Line(x)), tol)
	})

	t.Run("RSquaredConstantTarget", func(t *testing.T) {
		flat := Coefficients{Slope: 0, Intercept: 4}
		assert.Equal(t, 1.0, flat.RSquared([]float64{0, 1, 2}, []float64{4, 4, 4}))
		assert.Equal(t, 0.0, coef.RSquared([]float64{0, 1, 2}, []float64{4, 4, 4}))
	})
}
