// Package config provides numera-server configuration.
//
//   - spec.go: ServerConfig struct definition
//   - default.go: Default configuration values
//   - verify.go: Validation of loaded values
//   - sanitize.go: Masking of secrets before logging
//
// Configuration is loaded via internal/infra/confloader from a YAML file
// and NUMERA_* environment variables.
package config
