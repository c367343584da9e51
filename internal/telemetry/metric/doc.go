// Package metric provides Prometheus metrics for Numera.
//
// Metrics include:
//
//   - HTTP request counters and latency histograms per route
//   - Computation counters per operation
//   - Validation rejection counters per strategy and error code
//
// Metrics are exposed at /metrics in Prometheus text format.
package metric
