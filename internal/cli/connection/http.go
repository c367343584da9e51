// Package connection talks to numera-server over HTTP.
package connection

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/yndnr/numera-go/internal/infra/buildinfo"
)

// Envelope mirrors the server's response envelope.
type Envelope struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// APIError is a failed request as reported by the server.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("[%s] %s (HTTP %d)", e.Code, e.Message, e.Status)
}

// unixScheme selects a Unix domain socket server address.
const unixScheme = "unix://"

// HTTPClient provides HTTP communication with the server.
type HTTPClient struct {
	baseURL    string
	socketPath string
	tlsConfig  *tls.Config
	client     *http.Client
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// WithTLSConfig sets the TLS configuration used for https servers.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *HTTPClient) {
		c.tlsConfig = cfg
	}
}

// NewHTTPClient creates a new HTTP client. server may omit the scheme;
// "unix:///path/to.sock" talks to the server's local socket.
func NewHTTPClient(server string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		client: &http.Client{Timeout: 30 * time.Second},
	}

	switch {
	case strings.HasPrefix(server, unixScheme):
		c.socketPath = strings.TrimPrefix(server, unixScheme)
		c.baseURL = "http://localhost"
	case strings.HasPrefix(server, "http://"), strings.HasPrefix(server, "https://"):
		c.baseURL = strings.TrimRight(server, "/")
	default:
		c.baseURL = "http://" + strings.TrimRight(server, "/")
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.socketPath != "" || c.tlsConfig != nil {
		transport := &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: c.tlsConfig,
		}
		if c.socketPath != "" {
			path := c.socketPath
			transport.Proxy = nil
			transport.DialContext = func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", path)
			}
		}
		c.client.Transport = transport
	}
	return c
}

// BaseURL returns the base URL of the client.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Target describes the server being addressed.
func (c *HTTPClient) Target() string {
	if c.socketPath != "" {
		return unixScheme + c.socketPath
	}
	return c.baseURL
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, "", nil)
}

// Post performs a POST request with the given content type.
func (c *HTTPClient) Post(ctx context.Context, path, contentType string, body []byte) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, contentType, body)
}

// Call performs a request and decodes the envelope.
func (c *HTTPClient) Call(ctx context.Context, method, path, contentType string, body []byte) (*Envelope, error) {
	resp, err := c.do(ctx, method, path, contentType, body)
	if err != nil {
		return nil, err
	}
	return ParseResponse(resp)
}

func (c *HTTPClient) do(ctx context.Context, method, path, contentType string, body []byte) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "numera-cli/"+buildinfo.Get().Version)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// ParseResponse decodes the envelope and closes the body. Status codes of
// 400 and above are returned as *APIError.
func ParseResponse(resp *http.Response) (*Envelope, error) {
	defer resp.Body.Close()

	var env Envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Code = env.Code
			apiErr.Message = env.Message
			apiErr.RequestID = env.RequestID
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("parse response: %w", decodeErr)
	}
	return &env, nil
}

// DecodeData unmarshals the envelope's data field into target.
func (e *Envelope) DecodeData(target any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("response has no data")
	}
	if err := json.Unmarshal(e.Data, target); err != nil {
		return fmt.Errorf("parse data: %w", err)
	}
	return nil
}
