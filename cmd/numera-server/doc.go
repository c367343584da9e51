// Package main provides the entry point for numera-server.
//
// numera-server serves validated arithmetic and echo endpoints over HTTP.
//
// Usage:
//
//	numera-server [-config numera.yaml] [-version]
//
// Every setting can also come from NUMERA_* environment variables, e.g.
// NUMERA_SERVER_HTTP_ADDR=0.0.0.0:3000. Changing log.level in the config
// file takes effect without a restart.
package main
