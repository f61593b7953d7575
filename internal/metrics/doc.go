// Package metrics records build and preview-server measurements.
//
// Components receive a Recorder and default to NoopRecorder, so metrics
// stay optional and need no nil checks at call sites:
//
//	type Builder struct {
//	    recorder metrics.Recorder
//	}
//
// PrometheusRecorder backs the Recorder with client_golang collectors and
// HTTPHandler exposes them for scraping.
package metrics
