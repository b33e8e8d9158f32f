package regress

import "fmt"

// ErrDimensionMismatch indicates that the x and y sample sequences differ in length.
type ErrDimensionMismatch struct {
	XLen int
	YLen int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %d x-values, %d y-values", e.XLen, e.YLen)
}

// ErrTooFewSamples indicates that the sample set is not overdetermined.
// Fitting two coefficients requires more than two observations.
type ErrTooFewSamples struct {
	N int
}

func (e *ErrTooFewSamples) Error() string {
	return fmt.Sprintf("too few samples: got %d, need more than 2", e.N)
}

// ErrSingular indicates that the system has no unique least-squares solution,
// typically because all x-values are identical.
//
// Cond holds the estimated condition number when known (it may be +Inf).
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSingular struct {
	Cond  float64
	cause error
}

func (e *ErrSingular) Error() string {
	return fmt.Sprintf("singular matrix: condition number %g", e.Cond)
}

func (e *ErrSingular) Unwrap() error { return e.cause }
