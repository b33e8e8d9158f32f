package regress

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solver computes the least-squares coefficient vector for an overdetermined
// system A·theta ≈ y.
//
// Implementations must be stateless and safe for concurrent use.
type Solver interface {
	// Solve returns the coefficient vector minimizing ‖A·theta − y‖².
	// A singular (or numerically rank-deficient) system is reported as
	// *ErrSingular.
	Solve(a mat.Matrix, y mat.Vector) (*mat.VecDense, error)

	// Name returns a stable identifier for logs and artifacts.
	Name() string
}

// NormalEquation solves the system via the closed form x = (AᵗA)⁻¹Aᵗy.
//
// This is the faithful textbook method. Forming and inverting the Gram matrix
// squares the condition number of A, so prefer QR when numerical stability
// matters.
type NormalEquation struct{}

// Name implements Solver.
func (NormalEquation) Name() string { return "normal-equation" }

// Solve implements Solver.
func (NormalEquation) Solve(a mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	_, cols := a.Dims()

	var gram mat.Dense
	gram.Mul(a.T(), a)

	var inv mat.Dense
	if err := inv.Inverse(&gram); err != nil {
		return nil, asSingular(err)
	}

	var aty mat.VecDense
	aty.MulVec(a.T(), y)

	theta := mat.NewVecDense(cols, nil)
	theta.MulVec(&inv, &aty)

	return theta, nil
}

// QR solves the least-squares system through a QR factorization of A.
//
// It never forms AᵗA and is therefore far less sensitive to the conditioning
// of the design matrix than NormalEquation.
type QR struct{}

// Name implements Solver.
func (QR) Name() string { return "qr" }

// Solve implements Solver.
func (QR) Solve(a mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	_, cols := a.Dims()

	var qr mat.QR
	qr.Factorize(a)

	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, y); err != nil {
		return nil, asSingular(err)
	}

	theta := mat.NewVecDense(cols, nil)
	theta.CopyVec(sol.ColView(0))

	return theta, nil
}

// asSingular normalizes gonum's factorization failures into *ErrSingular.
// gonum reports an unusable factorization as a mat.Condition error carrying
// the estimated condition number.
func asSingular(err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return &ErrSingular{Cond: float64(cond), cause: err}
	}
	return &ErrSingular{Cond: math.Inf(1), cause: err}
}
