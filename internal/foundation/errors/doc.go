// Package errors provides the classified error primitives shared across docnav.
//
// Every failure that reaches a user (CLI exit, HTTP response) is expected to be
// a ClassifiedError so adapters can pick exit codes, status codes and log levels
// without string matching.
//
//   - ErrorCategory: broad classification (config, not_found, content, ...)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - RetryStrategy: whether retrying can help
//   - ErrorBuilder: fluent constructor
//
// Example usage:
//
//	err := errors.ConfigError("duplicate resolved path").
//		WithContext("path", "/foundations/modules").
//		WithContext("version", "/").
//		Build()
package errors
