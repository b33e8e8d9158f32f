package regress

import "gonum.org/v1/gonum/mat"

// Coefficients is the solved parameter pair of a simple linear fit.
// It is a plain value; recomputing a fit always produces a fresh value and
// existing Coefficients are never mutated.
type Coefficients struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"y_intercept"`
}

// Predict evaluates the fitted line at x.
func (c Coefficients) Predict(x float64) float64 {
	return c.Slope*x + c.Intercept
}

// Line evaluates the fitted line at every point of xs, producing the
// best-fit sequence for display alongside the samples.
func (c Coefficients) Line(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = c.Predict(x)
	}
	return ys
}

// Residuals returns y − ŷ for each sample.
func (c Coefficients) Residuals(x, y []float64) []float64 {
	res := make([]float64, len(x))
	for i := range x {
		res[i] = y[i] - c.Predict(x[i])
	}
	return res
}

// RSquared returns the coefficient of determination of the fit on the given
// samples: 1 − SSE/SST. A constant y-sequence yields an SST of zero; in that
// case 1 is returned when the residuals are also zero, 0 otherwise.
func (c Coefficients) RSquared(x, y []float64) float64 {
	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	var sse, sst float64
	for i := range x {
		d := y[i] - c.Predict(x[i])
		sse += d * d
		t := y[i] - mean
		sst += t * t
	}

	if sst == 0 {
		if sse == 0 {
			return 1
		}
		return 0
	}
	return 1 - sse/sst
}

// Fit solves the simple least-squares line for the given sample sequences
// using the provided solver. If solver is nil, NormalEquation is used.
func Fit(x, y []float64, solver Solver) (Coefficients, error) {
	if len(x) != len(y) {
		return Coefficients{}, &ErrDimensionMismatch{XLen: len(x), YLen: len(y)}
	}
	if solver == nil {
		solver = NormalEquation{}
	}

	a, err := DesignMatrix(x)
	if err != nil {
		return Coefficients{}, err
	}

	theta, err := solver.Solve(a, mat.NewVecDense(len(y), y))
	if err != nil {
		return Coefficients{}, err
	}

	return Coefficients{
		Intercept: theta.AtVec(0),
		Slope:     theta.AtVec(1),
	}, nil
}
