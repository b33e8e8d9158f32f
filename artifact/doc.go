// Package artifact persists run outputs: fitted-model files, datasets, and
// rendered reports.
//
// Artifacts are small, immutable, whole objects, so the Store interface works
// on complete byte slices rather than streams. Backends cover the local file
// system and memory; subpackages add S3 and MinIO. Wrappers add transparent
// compression and byte-rate throttling.
package artifact
