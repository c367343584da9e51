package buildinfo

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should not be empty")
	}
	if info.Commit == "" {
		t.Error("Commit should not be empty")
	}
	if info.BuildTime == "" {
		t.Error("BuildTime should not be empty")
	}
	if info.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}
}

func TestString(t *testing.T) {
	info := Get()
	s := String()

	if !strings.HasPrefix(s, info.Version+" ("+info.Commit+") built at "+info.BuildTime) {
		t.Errorf("String() = %q", s)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		bi   *debug.BuildInfo
		ok   bool
		want Info
	}{
		{
			name: "no build info",
			want: Info{Version: "dev", Commit: "unknown", BuildTime: "unknown", GoVersion: runtime.Version()},
		},
		{
			name: "vcs stamp",
			ok:   true,
			bi: &debug.BuildInfo{
				GoVersion: "go1.24.0",
				Main:      debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: Info{
				Version:   "v0.3.1",
				Commit:    "0123456789ab",
				BuildTime: "2026-01-02T03:04:05Z",
				GoVersion: "go1.24.0",
				Modified:  true,
			},
		},
		{
			name: "devel main module keeps default version",
			ok:   true,
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: Info{Version: "dev", Commit: "unknown", BuildTime: "unknown", GoVersion: runtime.Version()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve(tt.bi, tt.ok); got != tt.want {
				t.Errorf("resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
