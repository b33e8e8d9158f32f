package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the fit command's flags so a run can be described in a
// YAML file instead of on the command line. Flags set explicitly on the
// command line win over file values.
type Config struct {
	Samples   int      `yaml:"samples"`
	Min       float64  `yaml:"min"`
	Max       float64  `yaml:"max"`
	Slope     float64  `yaml:"slope"`
	Intercept float64  `yaml:"intercept"`
	Noise     float64  `yaml:"noise"`
	Seed      *int64   `yaml:"seed"`
	Solver    string   `yaml:"solver"`
	Input     string   `yaml:"input"`
	Out       string   `yaml:"out"`
	Run       string   `yaml:"run"`
	HTML      bool     `yaml:"html"`
	Plot      bool     `yaml:"plot"`
	Verbose   bool     `yaml:"verbose"`
	S3        S3Config `yaml:"s3"`
}

// S3Config selects an S3-compatible artifact store. When Bucket is empty,
// artifacts are written to the local out directory only.
type S3Config struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region"`
}

func defaultConfig() Config {
	return Config{
		Samples:   100,
		Min:       0,
		Max:       10,
		Slope:     1,
		Intercept: 0,
		Noise:     1,
		Solver:    "normal-equation",
		Out:       "out",
		Run:       "run",
		HTML:      true,
		Plot:      true,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
