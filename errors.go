package fitgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fitgo/regress"
)

// ErrSingularMatrix indicates that the normal-equation system is singular and
// has no unique least-squares solution.
//
// Cond holds the estimated condition number when known (it may be +Inf).
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSingularMatrix struct {
	Cond  float64
	cause error
}

func (e *ErrSingularMatrix) Error() string {
	return fmt.Sprintf("singular matrix: condition number %g", e.Cond)
}

func (e *ErrSingularMatrix) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates that the x and y sequences differ in length.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	XLen  int
	YLen  int
	cause error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %d x-values, %d y-values", e.XLen, e.YLen)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrTooFewSamples indicates that the sample set is not overdetermined.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrTooFewSamples struct {
	N     int
	cause error
}

func (e *ErrTooFewSamples) Error() string {
	return fmt.Sprintf("too few samples: got %d, need more than 2", e.N)
}

func (e *ErrTooFewSamples) Unwrap() error { return e.cause }

// translateError normalizes subpackage errors into the root error types.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var singular *regress.ErrSingular
	if errors.As(err, &singular) {
		return &ErrSingularMatrix{Cond: singular.Cond, cause: err}
	}
	var mismatch *regress.ErrDimensionMismatch
	if errors.As(err, &mismatch) {
		return &ErrDimensionMismatch{XLen: mismatch.XLen, YLen: mismatch.YLen, cause: err}
	}
	var few *regress.ErrTooFewSamples
	if errors.As(err, &few) {
		return &ErrTooFewSamples{N: few.N, cause: err}
	}

	return err
}
