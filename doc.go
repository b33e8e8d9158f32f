// Package fitgo provides closed-form least-squares line fitting with
// reporting and artifact publishing.
//
// Fitgo reworks the classic "fit a noisy line with the normal equation"
// exercise into an embeddable toolkit: generate (or load) a sample set, solve
// for slope and intercept, and present the result as a console summary, a
// scatter-plus-line plot, and an HTML chart.
//
// # Quick Start
//
//	gen, _ := dataset.NewGenerator()        // 100 points on y = x + N(0,1)
//	ds := gen.Generate()
//
//	fitter := fitgo.Linear().MustBuild()
//	model, _ := fitter.Fit(context.Background(), ds.X, ds.Y)
//
//	report.WriteSummary(os.Stdout, model.Coefficients)
//	// slope: 1.0231...
//	// y_intercept: -0.1174...
//
// # Solvers
//
// Two solvers are available:
//
//	fitgo.Linear().NormalEquation()  // textbook x = (AᵗA)⁻¹Aᵗy (default)
//	fitgo.Linear().QR()              // QR least squares, numerically safer
//
// A singular system (for example, all x-values identical) is reported as a
// typed *ErrSingularMatrix, never as silent NaN coefficients.
//
// # Publishing
//
// A Publisher renders and uploads the artifacts of a run (model JSON, dataset
// CSV, PNG plot, HTML report, summary) to any artifact.Store:
//
//	store := artifact.NewLocalStore("./out")
//	pub := fitgo.NewPublisher(store)
//	_ = pub.Publish(ctx, "demo", ds, model)
package fitgo
