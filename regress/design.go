package regress

import "gonum.org/v1/gonum/mat"

// DesignMatrix assembles the n×2 augmented design matrix for a simple linear
// fit. Column 0 holds the constant bias term, column 1 the feature values, so
// the solved coefficient vector reads [intercept, slope].
//
// The sample set must be overdetermined (n > 2); otherwise *ErrTooFewSamples
// is returned. Full column rank is not checked here - a rank-deficient matrix
// surfaces as *ErrSingular at solve time.
func DesignMatrix(x []float64) (*mat.Dense, error) {
	if len(x) <= 2 {
		return nil, &ErrTooFewSamples{N: len(x)}
	}

	a := mat.NewDense(len(x), 2, nil)
	for i, v := range x {
		a.Set(i, 0, 1)
		a.Set(i, 1, v)
	}

	return a, nil
}
