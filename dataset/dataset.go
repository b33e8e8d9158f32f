package dataset

import "fmt"

// Dataset is an ordered sequence of (x, y) sample pairs. It is generated or
// loaded once and treated as immutable afterward.
type Dataset struct {
	X []float64
	Y []float64
}

// New creates a Dataset from parallel x and y sequences.
func New(x, y []float64) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("dataset: %d x-values, %d y-values", len(x), len(y))
	}
	return &Dataset{X: x, Y: y}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.X) }

// XY returns the i-th sample pair.
func (d *Dataset) XY(i int) (x, y float64) { return d.X[i], d.Y[i] }
