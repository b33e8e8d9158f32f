package report

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hupe1980/fitgo/dataset"
	"github.com/hupe1980/fitgo/regress"
)

// HTMLReport renders an interactive scatter-plus-line chart page.
type HTMLReport struct {
	ds   *dataset.Dataset
	coef regress.Coefficients

	// Title is the chart title. Defaults to "Least-Squares Fit".
	Title string
}

// NewHTMLReport creates an HTMLReport for the given samples and fit.
func NewHTMLReport(ds *dataset.Dataset, coef regress.Coefficients) *HTMLReport {
	return &HTMLReport{
		ds:    ds,
		coef:  coef,
		Title: "Least-Squares Fit",
	}
}

// Render writes the report as a standalone HTML page.
func (r *HTMLReport) Render(w io.Writer) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    r.Title,
			Subtitle: fmt.Sprintf("y = %.4g·x + %.4g", r.coef.Slope, r.coef.Intercept),
		}),
		charts.WithLegendOpts(opts.Legend{
			Right: "10",
			Top:   "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)

	samples := make([]opts.ScatterData, r.ds.Len())
	for i := range samples {
		samples[i] = opts.ScatterData{
			Value:      r.ds.Y[i],
			SymbolSize: 6,
		}
	}
	scatter.SetXAxis(r.ds.X).AddSeries("samples", samples)

	fitted := r.coef.Line(r.ds.X)
	lineData := make([]opts.LineData, len(fitted))
	for i, v := range fitted {
		lineData[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.AddSeries("best fit", lineData)

	scatter.Overlap(line)

	page := components.NewPage()
	page.AddCharts(scatter)
	return page.Render(w)
}

// Handler serves the rendered report over HTTP.
func (r *HTMLReport) Handler(w http.ResponseWriter, _ *http.Request) {
	_ = r.Render(w)
}
