package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/hupe1980/fitgo"
	"github.com/hupe1980/fitgo/artifact"
	"github.com/hupe1980/fitgo/artifact/s3"
	"github.com/hupe1980/fitgo/dataset"
	"github.com/hupe1980/fitgo/regress"
	"github.com/hupe1980/fitgo/report"
)

func newFitCmd() *cobra.Command {
	var configPath string
	cfg := defaultConfig()
	var seed int64

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Generate (or load) samples, fit a line and report it",
		Long: `Generates a noisy linear sample set (or loads one from CSV), solves for
slope and intercept via least squares and prints the result. Optionally
writes the dataset, plot, HTML report and model to an artifact store.

Examples:
  fitgo fit                                # 100 noisy samples of y = x
  fitgo fit --slope 2.5 --noise 0.5        # different ground truth
  fitgo fit --seed 42 --solver qr          # reproducible, QR solver
  fitgo fit --input data.csv               # fit an existing dataset
  fitgo fit --out ./artifacts --run demo   # publish artifacts locally
  fitgo fit --config fit.yaml              # describe the run in YAML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			mergeFlags(cmd, &fileCfg, cfg)
			if cmd.Flags().Changed("seed") {
				fileCfg.Seed = &seed
			}
			return runFit(cmd.Context(), fileCfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file describing the run")
	cmd.Flags().IntVar(&cfg.Samples, "samples", cfg.Samples, "number of samples to generate")
	cmd.Flags().Float64Var(&cfg.Min, "min", cfg.Min, "lower bound of the x-range")
	cmd.Flags().Float64Var(&cfg.Max, "max", cfg.Max, "upper bound of the x-range")
	cmd.Flags().Float64Var(&cfg.Slope, "slope", cfg.Slope, "true slope of the generated line")
	cmd.Flags().Float64Var(&cfg.Intercept, "intercept", cfg.Intercept, "true intercept of the generated line")
	cmd.Flags().Float64Var(&cfg.Noise, "noise", cfg.Noise, "standard deviation of the Gaussian noise")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible samples")
	cmd.Flags().StringVar(&cfg.Solver, "solver", cfg.Solver, "least-squares solver (normal-equation or qr)")
	cmd.Flags().StringVar(&cfg.Input, "input", cfg.Input, "CSV file to fit instead of generating samples")
	cmd.Flags().StringVar(&cfg.Out, "out", cfg.Out, "directory for published artifacts (empty to skip)")
	cmd.Flags().StringVar(&cfg.Run, "run", cfg.Run, "run name used as the artifact prefix")
	cmd.Flags().BoolVar(&cfg.Plot, "plot", cfg.Plot, "render the PNG plot artifact")
	cmd.Flags().BoolVar(&cfg.HTML, "html", cfg.HTML, "render the HTML report artifact")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")
	cmd.Flags().StringVar(&cfg.S3.Bucket, "s3-bucket", cfg.S3.Bucket, "publish artifacts to this S3 bucket")
	cmd.Flags().StringVar(&cfg.S3.Prefix, "s3-prefix", cfg.S3.Prefix, "key prefix inside the S3 bucket")
	cmd.Flags().StringVar(&cfg.S3.Region, "s3-region", cfg.S3.Region, "AWS region of the S3 bucket")

	return cmd
}

// mergeFlags overlays explicitly-set flag values onto the file config.
func mergeFlags(cmd *cobra.Command, dst *Config, flags Config) {
	set := map[string]func(){
		"samples":   func() { dst.Samples = flags.Samples },
		"min":       func() { dst.Min = flags.Min },
		"max":       func() { dst.Max = flags.Max },
		"slope":     func() { dst.Slope = flags.Slope },
		"intercept": func() { dst.Intercept = flags.Intercept },
		"noise":     func() { dst.Noise = flags.Noise },
		"solver":    func() { dst.Solver = flags.Solver },
		"input":     func() { dst.Input = flags.Input },
		"out":       func() { dst.Out = flags.Out },
		"run":       func() { dst.Run = flags.Run },
		"plot":      func() { dst.Plot = flags.Plot },
		"html":      func() { dst.HTML = flags.HTML },
		"verbose":   func() { dst.Verbose = flags.Verbose },
		"s3-bucket": func() { dst.S3.Bucket = flags.S3.Bucket },
		"s3-prefix": func() { dst.S3.Prefix = flags.S3.Prefix },
		"s3-region": func() { dst.S3.Region = flags.S3.Region },
	}
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

func runFit(ctx context.Context, cfg Config) error {
	logger := fitgo.NoopLogger()
	if cfg.Verbose {
		logger = fitgo.NewTextLogger(slog.LevelDebug)
	}

	solver, err := solverByName(cfg.Solver)
	if err != nil {
		return err
	}

	fitter, err := fitgo.New(
		fitgo.WithSolver(solver),
		fitgo.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	var (
		ds    *dataset.Dataset
		model *fitgo.Model
	)
	if cfg.Input != "" {
		ds, err = loadCSV(cfg.Input)
		if err != nil {
			return err
		}
		model, err = fitter.Fit(ctx, ds.X, ds.Y)
	} else {
		ds, model, err = fitter.FitSynthetic(ctx, func(o *dataset.Options) {
			o.N = cfg.Samples
			o.Min = cfg.Min
			o.Max = cfg.Max
			o.Slope = cfg.Slope
			o.Intercept = cfg.Intercept
			o.NoiseSigma = cfg.Noise
			o.Seed = cfg.Seed
		})
	}
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	if err := report.WriteSummary(os.Stdout, model.Coefficients); err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if store == nil {
		return nil
	}

	pub := fitgo.NewPublisher(store, func(o *fitgo.PublisherOptions) {
		o.SkipPlot = !cfg.Plot
		o.SkipHTML = !cfg.HTML
		o.Logger = logger
	})
	if err := pub.Publish(ctx, cfg.Run, ds, model); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

func loadCSV(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ReadCSV(f)
}

func solverByName(name string) (regress.Solver, error) {
	switch name {
	case "", "normal-equation":
		return regress.NormalEquation{}, nil
	case "qr":
		return regress.QR{}, nil
	default:
		return nil, fmt.Errorf("unknown solver %q (want normal-equation or qr)", name)
	}
}

func openStore(ctx context.Context, cfg Config) (artifact.Store, error) {
	if cfg.S3.Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3.Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		client := awss3.NewFromConfig(awsCfg)
		return s3.New(client, cfg.S3.Bucket, func(o *s3.Options) {
			o.Prefix = cfg.S3.Prefix
		}), nil
	}

	if cfg.Out == "" {
		return nil, nil
	}
	return artifact.NewLocalStore(cfg.Out), nil
}
