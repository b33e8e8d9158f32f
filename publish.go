package fitgo

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fitgo/artifact"
	"github.com/hupe1980/fitgo/codec"
	"github.com/hupe1980/fitgo/dataset"
	"github.com/hupe1980/fitgo/report"
)

// PublisherOptions configures a Publisher.
type PublisherOptions struct {
	// Codec encodes the model artifact. Defaults to codec.Default (JSON).
	Codec codec.Codec

	// Concurrency bounds the number of parallel uploads. Defaults to 4.
	Concurrency int

	// SkipPlot disables rendering the PNG plot artifact.
	SkipPlot bool

	// SkipHTML disables rendering the HTML report artifact.
	SkipHTML bool

	// Logger traces publish operations. Defaults to NoopLogger().
	Logger *Logger

	// Metrics records publish operations. Defaults to NoopMetricsCollector{}.
	Metrics MetricsCollector
}

// DefaultPublisherOptions are the defaults applied by NewPublisher.
var DefaultPublisherOptions = PublisherOptions{
	Codec:       codec.Default,
	Concurrency: 4,
}

// Publisher renders the artifacts of a fit run and uploads them to a Store.
//
// Each run produces up to five artifacts under the run name:
//
//	<run>/model.json    encoded Model
//	<run>/dataset.csv   the samples
//	<run>/summary.txt   console summary (slope and intercept)
//	<run>/fit.png       scatter-plus-line plot
//	<run>/fit.html      interactive chart page
type Publisher struct {
	store   artifact.Store
	codec   codec.Codec
	conc    int
	plot    bool
	html    bool
	logger  *Logger
	metrics MetricsCollector
}

// NewPublisher creates a Publisher writing to the given store.
func NewPublisher(store artifact.Store, optFns ...func(o *PublisherOptions)) *Publisher {
	opts := DefaultPublisherOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	return &Publisher{
		store:   store,
		codec:   opts.Codec,
		conc:    opts.Concurrency,
		plot:    !opts.SkipPlot,
		html:    !opts.SkipHTML,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// Publish renders and uploads the artifacts of a run.
//
// Rendering happens first so that a render failure aborts before any byte is
// written to the store. Uploads then run concurrently; the first failure
// cancels the rest.
func (p *Publisher) Publish(ctx context.Context, run string, ds *dataset.Dataset, model *Model) error {
	start := time.Now()

	artifacts, err := p.render(ds, model)
	if err != nil {
		return fmt.Errorf("render artifacts: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.conc)

	for name, data := range artifacts {
		name, data := name, data
		g.Go(func() error {
			if err := p.store.Put(ctx, path.Join(run, name), data); err != nil {
				return fmt.Errorf("put %s: %w", name, err)
			}
			return nil
		})
	}

	err = g.Wait()
	duration := time.Since(start)

	failed := 0
	if err != nil {
		failed = 1
	}
	p.logger.LogPublish(ctx, run, len(artifacts), failed)
	p.metrics.RecordPublish(len(artifacts), failed, duration)

	return err
}

func (p *Publisher) render(ds *dataset.Dataset, model *Model) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, 5)

	encoded, err := p.codec.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("encode model: %w", err)
	}
	artifacts["model."+p.codec.Name()] = encoded

	var csvBuf bytes.Buffer
	if err := ds.WriteCSV(&csvBuf); err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	artifacts["dataset.csv"] = csvBuf.Bytes()

	var sumBuf bytes.Buffer
	if err := report.WriteSummary(&sumBuf, model.Coefficients); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}
	artifacts["summary.txt"] = sumBuf.Bytes()

	if p.plot {
		var pngBuf bytes.Buffer
		if err := report.NewScatterPlot(ds, model.Coefficients).Render(&pngBuf); err != nil {
			return nil, fmt.Errorf("render plot: %w", err)
		}
		artifacts["fit.png"] = pngBuf.Bytes()
	}

	if p.html {
		var htmlBuf bytes.Buffer
		if err := report.NewHTMLReport(ds, model.Coefficients).Render(&htmlBuf); err != nil {
			return nil, fmt.Errorf("render html: %w", err)
		}
		artifacts["fit.html"] = htmlBuf.Bytes()
	}

	return artifacts, nil
}
