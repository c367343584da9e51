// Package logger provides structured logging for Numera.
//
// It wraps log/slog:
//
//   - logger.go: Logger interface, handler construction, global level
//   - context.go: context propagation of loggers and request IDs
//
// The level can be changed at runtime with SetLevel; the server does this
// when the configuration file is edited.
package logger
