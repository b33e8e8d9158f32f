// Package dataset provides sample sets for line fitting: a synthetic
// generator producing noisy points along a known line, and CSV
// encoding/decoding for persisting them.
package dataset
