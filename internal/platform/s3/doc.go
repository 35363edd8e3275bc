// Package s3 provides a small client for S3-compatible object storage.
//
// It is used to archive finished survey responses. Any S3-compatible
// endpoint works; virtual-hosted or path-style addressing is selected in
// Options.
package s3
