// Package tlsroots builds client TLS configuration for numera-cli.
//
// Roots start from the system pool; a PEM bundle may add private CAs so
// the CLI can reach a server whose certificate is not publicly trusted.
package tlsroots
