// Package regress implements closed-form least-squares fitting of a simple
// line over gonum dense matrices.
//
// The package exposes the three numeric stages of the pipeline: building the
// augmented design matrix, solving the overdetermined system, and evaluating
// the fitted coefficients. Two interchangeable solvers are provided:
//
//   - NormalEquation: the textbook x = (AᵗA)⁻¹Aᵗy closed form
//   - QR: a QR-factorization least-squares solve, which avoids forming the
//     Gram matrix and is the numerically preferable default for new code
//
// Both solvers report a singular system as a typed *ErrSingular rather than
// returning garbage coefficients.
package regress
