// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with configurable max
// attempts and initial delay; the delay doubles per attempt up to a fixed
// ceiling. It backs the controller API reads, which may fail transiently.
// Errors wrapped with [Fatal] are never retried and are returned with the
// marker stripped.
package retry
