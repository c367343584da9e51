// Package confloader loads Numera configuration with koanf.
//
// Sources, lowest to highest priority:
//
//  1. Defaults already present in the target struct
//  2. A YAML file (WithConfigFile)
//  3. Environment variables (NUMERA_ prefix by default)
//
// Environment names are matched against the target's koanf tags, so
// NUMERA_SERVER_HTTP_TLS_CERT_FILE resolves to server.http.tls_cert_file.
//
// Watcher reports writes to the config file so callers can re-read the
// settings that are safe to change at runtime.
package confloader
