package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Options configures synthetic dataset generation.
type Options struct {
	// N is the number of samples to generate. Must be greater than 2 so the
	// resulting system is overdetermined.
	N int

	// Min and Max bound the x-domain. X-values are evenly spaced across
	// [Min, Max].
	Min float64
	Max float64

	// Slope and Intercept define the true line the samples scatter around.
	Slope     float64
	Intercept float64

	// NoiseSigma is the standard deviation of the Gaussian noise added to
	// each y-value. Zero produces noiseless samples exactly on the line.
	NoiseSigma float64

	// Seed fixes the noise source for deterministic generation.
	// If not set, a time-based seed is used and runs are not reproducible.
	Seed *int64
}

// DefaultOptions mirrors the classic demonstration setup: 100 points evenly
// spaced on [0, 10] along y = x with unit Gaussian noise.
var DefaultOptions = Options{
	N:          100,
	Min:        0,
	Max:        10,
	Slope:      1,
	Intercept:  0,
	NoiseSigma: 1,
}

// Generator produces synthetic noisy linear datasets.
type Generator struct {
	opts Options
	rng  *rand.Rand
}

// NewGenerator creates a Generator, applying any option functions on top of
// DefaultOptions.
func NewGenerator(optFns ...func(o *Options)) (*Generator, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.N <= 2 {
		return nil, fmt.Errorf("dataset: sample count must be greater than 2, got %d", opts.N)
	}
	if opts.Max <= opts.Min {
		return nil, fmt.Errorf("dataset: invalid domain [%g, %g]", opts.Min, opts.Max)
	}
	if opts.NoiseSigma < 0 {
		return nil, fmt.Errorf("dataset: noise sigma must not be negative, got %g", opts.NoiseSigma)
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	return &Generator{
		opts: opts,
		rng:  rand.New(rand.NewSource(seed)), // nolint gosec
	}, nil
}

// Generate produces a fresh dataset: x-values evenly spaced across the
// domain, y-values on the true line plus independent Gaussian noise.
func (g *Generator) Generate() *Dataset {
	x := floats.Span(make([]float64, g.opts.N), g.opts.Min, g.opts.Max)

	y := make([]float64, g.opts.N)
	for i, v := range x {
		y[i] = g.opts.Slope*v + g.opts.Intercept + g.rng.NormFloat64()*g.opts.NoiseSigma
	}

	return &Dataset{X: x, Y: y}
}

// TrueLine returns the slope and intercept the generator scatters around.
func (g *Generator) TrueLine() (slope, intercept float64) {
	return g.opts.Slope, g.opts.Intercept
}

// NoiseSigma returns the standard deviation of the generator's noise.
func (g *Generator) NoiseSigma() float64 {
	return g.opts.NoiseSigma
}
