// Package storage hands finished survey responses to a submission backend.
//
// Backends are selected by config.StorageConfig: a directory of YAML files,
// a SQLite database, an S3-compatible bucket, a MongoDB collection, or Redis.
// Remote backends are wrapped with retries.
package storage
