// Package retry retries transient failures with exponential backoff.
//
// [Do] runs an operation until it succeeds, returns an error marked with
// [Fatal], runs out of attempts, or the context is done. It is used to
// retry response submissions against remote storage backends.
package retry
