// Package s3 implements artifact.Store on Amazon S3 (and API-compatible
// object stores) via the AWS SDK v2.
package s3
