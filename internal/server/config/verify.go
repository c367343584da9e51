// Package config provides numera-server configuration.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "text"}
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyHTTP(&cfg.Server.HTTP); err != nil {
		return err
	}
	if err := verifyLocal(&cfg.Server.Local); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyHTTP(cfg *HTTPConfig) error {
	if cfg.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("server.http.addr %q: %w", cfg.Addr, err)
	}

	if (cfg.TLSCertFile == "") != (cfg.TLSKeyFile == "") {
		return errors.New("server.http.tls_cert_file and server.http.tls_key_file must be set together")
	}
	for _, path := range []string{cfg.TLSCertFile, cfg.TLSKeyFile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("tls file: %w", err)
		}
	}

	if cfg.ReadHeaderTimeout <= 0 {
		return errors.New("server.http.read_header_timeout must be positive")
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("server.http.shutdown_timeout must be positive")
	}
	if cfg.RateLimit < 0 {
		return errors.New("server.http.rate_limit must not be negative")
	}
	return nil
}

// maxSocketPath is the portable limit for sun_path.
const maxSocketPath = 104

func verifyLocal(cfg *LocalConfig) error {
	if !cfg.Enabled() {
		return nil
	}
	if len(cfg.SocketPath) > maxSocketPath {
		return fmt.Errorf("server.local.socket_path longer than %d bytes", maxSocketPath)
	}
	info, err := os.Stat(filepath.Dir(cfg.SocketPath))
	if err != nil {
		return fmt.Errorf("server.local.socket_path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("server.local.socket_path: %s is not a directory", filepath.Dir(cfg.SocketPath))
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !contains(validLevels, strings.ToLower(cfg.Level)) {
		return fmt.Errorf("log.level %q: want one of %s", cfg.Level, strings.Join(validLevels, ", "))
	}
	if !contains(validFormats, strings.ToLower(cfg.Format)) {
		return fmt.Errorf("log.format %q: want one of %s", cfg.Format, strings.Join(validFormats, ", "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
