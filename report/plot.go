package report

import (
	"encoding/base64"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/hupe1980/fitgo/dataset"
	"github.com/hupe1980/fitgo/regress"
)

// ScatterPlot renders a dataset as a scatter of sample points with the
// fitted line drawn through them.
type ScatterPlot struct {
	ds   *dataset.Dataset
	coef regress.Coefficients

	// Title is the plot title. Defaults to "Least-Squares Fit".
	Title string

	// Width and Height are the canvas dimensions.
	// Defaults: 10cm × 7.5cm.
	Width  vg.Length
	Height vg.Length
}

// NewScatterPlot creates a ScatterPlot with default dimensions.
func NewScatterPlot(ds *dataset.Dataset, coef regress.Coefficients) *ScatterPlot {
	return &ScatterPlot{
		ds:     ds,
		coef:   coef,
		Title:  "Least-Squares Fit",
		Width:  10 * vg.Centimeter,
		Height: 7.5 * vg.Centimeter,
	}
}

// Render writes the plot as a PNG image.
func (sp *ScatterPlot) Render(w io.Writer) error {
	p := plot.New()
	p.Title.Text = sp.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, sp.ds.Len())
	for i := range pts {
		pts[i].X, pts[i].Y = sp.ds.XY(i)
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(2)

	fitted := sp.coef.Line(sp.ds.X)
	linePts := make(plotter.XYs, len(fitted))
	for i := range linePts {
		linePts[i].X = sp.ds.X[i]
		linePts[i].Y = fitted[i]
	}

	line, err := plotter.NewLine(linePts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 255, A: 255}

	p.Add(scatter, line)
	p.Legend.Add("samples", scatter)
	p.Legend.Add("best fit", line)

	img := vgimg.New(sp.Width, sp.Height)
	p.Draw(draw.New(img))

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	return err
}

// DataURI renders the plot and returns it as a base64 PNG data URI,
// suitable for embedding in HTML or notebook-style output.
func (sp *ScatterPlot) DataURI() (string, error) {
	var sb strings.Builder
	enc := base64.NewEncoder(base64.StdEncoding, &sb)

	if err := sp.Render(enc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	return "data:image/png;base64," + sb.String(), nil
}
