// Package config provides numera-server configuration.
package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr          = "127.0.0.1:3000"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultRateLimit         = 100.0

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:              DefaultHTTPAddr,
				ReadHeaderTimeout: DefaultReadHeaderTimeout,
				ShutdownTimeout:   DefaultShutdownTimeout,
				RateLimit:         DefaultRateLimit,
				EnableAudit:       true,
			},
			Metrics: MetricsConfig{
				Enabled: true,
			},
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
