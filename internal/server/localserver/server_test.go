package localserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func unixClient(path string) *http.Client {
	return &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", path)
			},
		},
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numera.sock")
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hola"))
	})

	srv := New(path, handler)
	if srv.Path() != path {
		t.Errorf("Path() = %q, want %q", srv.Path(), path)
	}
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("socket mode = %o, want 600", perm)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve() }()

	resp, err := unixClient(path).Get("http://numera/")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "hola" {
		t.Errorf("body = %q, want hola", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Serve() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("socket still exists after shutdown: %v", err)
	}
}

func TestServer_ReplacesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stale.sock")

	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	// Leave the file behind as a crashed process would.
	ln.(*net.UnixListener).SetUnlinkOnClose(false)
	ln.Close()

	srv := New(path, http.NotFoundHandler())
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen() over stale socket error = %v", err)
	}
	_ = srv.Shutdown(context.Background())
}

func TestServer_RefusesRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-socket")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := New(path, http.NotFoundHandler()).Listen(); err == nil {
		t.Error("expected error for regular file")
	}
}

func TestServer_ServeBeforeListen(t *testing.T) {
	srv := New(filepath.Join(t.TempDir(), "x.sock"), http.NotFoundHandler())
	if err := srv.Serve(); err == nil {
		t.Error("expected error when serving before Listen")
	}
}
