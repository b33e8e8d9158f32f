// Package report presents fit results: the canonical two-line console
// summary, a scatter-plus-line PNG plot, and an interactive HTML chart page.
//
// Rendering is purely presentational; nothing in this package mutates the
// dataset or the fitted coefficients.
package report
