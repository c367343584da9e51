// Package buildinfo reports the version of the running Numera binary.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/numera-go/internal/infra/buildinfo.Version=v1.0.0"
//
// Anything not injected falls back to the module's embedded VCS stamp.
package buildinfo
