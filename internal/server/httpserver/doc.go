// Package httpserver provides the HTTP/HTTPS server for Numera.
//
// This package wires the handler package behind a middleware chain using
// stdlib net/http:
//
//   - Arithmetic endpoints: /square, /cube, /squareRoot, /multiply
//   - Service endpoints: /service/squareRoot (inline, pipe and filter)
//   - Echo endpoints: /course, /text
//   - Operational endpoints: /health, /ready, /version, /metrics
//
// Middleware order, outermost first:
//
//	Recover -> RequestID -> CORS -> RateLimit -> Audit -> Metrics -> handler
package httpserver
