// Package config provides numera-server configuration.
package config

import "time"

// ServerConfig is the root configuration for numera-server.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP    HTTPConfig    `koanf:"http"`
	Local   LocalConfig   `koanf:"local"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`

	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`

	// RateLimit is requests per second allowed per client IP. Zero disables
	// rate limiting.
	RateLimit float64 `koanf:"rate_limit"`

	// CORSAllowedOrigins lists origins allowed for cross-origin requests.
	// Empty disables CORS headers; "*" allows any origin.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	EnableAudit bool `koanf:"enable_audit"`
}

// TLSEnabled reports whether both TLS files are configured.
func (c HTTPConfig) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// LocalConfig configures the Unix domain socket listener.
type LocalConfig struct {
	// SocketPath enables the local listener when set.
	SocketPath string `koanf:"socket_path"`
}

// Enabled reports whether the local listener is configured.
func (c LocalConfig) Enabled() bool {
	return c.SocketPath != ""
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`

	// AuthToken, when set, is required as a bearer token on GET /metrics.
	AuthToken string `koanf:"auth_token"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
