// Package handler provides HTTP request handlers for Numera.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/yndnr/numera-go/internal/core/service"
	"github.com/yndnr/numera-go/internal/telemetry/logger"
)

// countingObserver records observer events.
type countingObserver struct {
	mu           sync.Mutex
	computations map[string]int
	rejections   map[string]int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{
		computations: make(map[string]int),
		rejections:   make(map[string]int),
	}
}

func (o *countingObserver) ObserveComputation(op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.computations[op]++
}

func (o *countingObserver) ObserveRejection(strategy, code string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejections[strategy+":"+code]++
}

func (o *countingObserver) totalComputations() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, c := range o.computations {
		n += c
	}
	return n
}

func setupTestHandler(t *testing.T) (*Handler, *countingObserver) {
	t.Helper()
	obs := newCountingObserver()
	calc := service.NewCalculatorService(obs)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(calc, obs, log), obs
}

type testResponse struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
	Details   json.RawMessage `json:"details"`
}

func doRequest(t *testing.T, h http.Handler, method, target string, body io.Reader, headers map[string]string) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req = req.WithContext(logger.WithRequestID(context.Background(), "req-test"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp testResponse
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, resp
}

func dataString(t *testing.T, resp testResponse) string {
	t.Helper()
	var s string
	if err := json.Unmarshal(resp.Data, &s); err != nil {
		t.Fatalf("data %s is not a string: %v", resp.Data, err)
	}
	return s
}

func dataNumber(t *testing.T, resp testResponse) float64 {
	t.Helper()
	var n float64
	if err := json.Unmarshal(resp.Data, &n); err != nil {
		t.Fatalf("data %s is not a number: %v", resp.Data, err)
	}
	return n
}

func TestHandler_StringEndpoints(t *testing.T) {
	h, _ := setupTestHandler(t)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"hello", "/", "Hola Vitae"},
		{"test", "/test", "Hola Test"},
		{"param", "/param/abc", "Param: abc of type string"},
		{"service hello", "/service/", "Hola Service"},
		{"service hello without slash", "/service", "Hola Service"},
		{"square loose", "/square/4", "Square of 4 of type string is 16"},
		{"square loose fraction", "/square/1.5", "Square of 1.5 of type string is 2.25"},
		{"square loose text", "/square/abc", "Square of abc of type string is NaN"},
		{"square pipe", "/square/pipe/5", "Square of 5 of type number is 25"},
		{"square pipe negative", "/square/pipe/-3", "Square of -3 of type number is 9"},
		{"multiply pipe", "/multiply/pipe/6/7", "Multiply of 6 and 7 of type number and number is 42"},
		{"multiply query", "/multiply/query?a=3&b=-4", "Multiply of 3 and -4 of type number and number is -12"},
		{"square pipe past int64", "/square/pipe/3037000500", "Square of 3037000500 of type number is 9223372037000250000"},
		{"square pipe wide digits", "/square/pipe/99999999999999999999", "Square of 100000000000000000000 of type number is 1e+40"},
		{"multiply pipe past int64", "/multiply/pipe/4294967296/4294967296", "Multiply of 4294967296 and 4294967296 of type number and number is 18446744073709552000"},
		{"multiply query int64 max", "/multiply/query?a=9223372036854775807&b=2", "Multiply of 9223372036854776000 and 2 of type number and number is 18446744073709552000"},
		{"service sqrt", "/service/squareRoot/16", "4"},
		{"service sqrt zero", "/service/squareRoot/0", "0"},
		{"service sqrt irrational", "/service/squareRoot/2", "1.4142135623730951"},
		{"service sqrt pipe", "/service/squareRoot/pipe/16", "4"},
		{"service sqrt pipe fraction", "/service/squareRoot/pipe/2.25", "1.5"},
		{"service sqrt pipe zero", "/service/squareRoot/pipe/0", "0"},
		{"service sqrt filter", "/service/squareRoot/filter/9", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, h, http.MethodGet, tt.target, nil, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
			}
			if resp.Code != "OK" {
				t.Errorf("code = %q, want OK", resp.Code)
			}
			if got := dataString(t, resp); got != tt.want {
				t.Errorf("data = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler_NumberEndpoints(t *testing.T) {
	h, _ := setupTestHandler(t)

	tests := []struct {
		target string
		want   float64
	}{
		{"/cube/3", 27},
		{"/cube/-2", -8},
		{"/cube/0", 0},
		{"/cube/2097152", 9223372036854775808},
		{"/cube/-2097152", -9223372036854775808},
		{"/squareRoot/16", 4},
		{"/squareRoot/0", 0},
		{"/squareRoot/2", 1.4142135623730951},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec, resp := doRequest(t, h, http.MethodGet, tt.target, nil, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
			}
			if got := dataNumber(t, resp); got != tt.want {
				t.Errorf("data = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandler_Rejections(t *testing.T) {
	const (
		negative   = "Negative number"
		nonNumeric = "Validation failed (numeric string is expected)"
	)

	tests := []struct {
		name    string
		target  string
		code    string
		message string
	}{
		{"square pipe text", "/square/pipe/abc", "NM-ARG-4002", nonNumeric},
		{"square pipe fraction", "/square/pipe/1.5", "NM-ARG-4002", nonNumeric},
		{"multiply pipe second operand", "/multiply/pipe/2/x", "NM-ARG-4002", nonNumeric},
		{"multiply query missing", "/multiply/query?a=2", "NM-ARG-4002", nonNumeric},
		{"cube text", "/cube/three", "NM-ARG-4002", nonNumeric},
		{"sqrt inline negative", "/squareRoot/-1", "NM-ARG-4001", negative},
		{"sqrt inline text", "/squareRoot/abc", "NM-ARG-4002", nonNumeric},
		{"service sqrt negative", "/service/squareRoot/-1", "NM-ARG-4001", negative},
		{"service sqrt pipe negative", "/service/squareRoot/pipe/-1", "NM-ARG-4001", negative},
		{"service sqrt pipe negative three", "/service/squareRoot/pipe/-3", "NM-ARG-4001", negative},
		{"service sqrt pipe text", "/service/squareRoot/pipe/abc", "NM-ARG-4002", nonNumeric},
		{"service sqrt pipe hex float", "/service/squareRoot/pipe/0x10p0", "NM-ARG-4002", nonNumeric},
		{"service sqrt filter negative", "/service/squareRoot/filter/-4", "NM-ARG-4001", negative},
		{"service sqrt filter text", "/service/squareRoot/filter/abc", "NM-ARG-4002", nonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupTestHandler(t)
			rec, resp := doRequest(t, h, http.MethodGet, tt.target, nil, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
			}
			if resp.Code != tt.code {
				t.Errorf("code = %q, want %q", resp.Code, tt.code)
			}
			if resp.Message != tt.message {
				t.Errorf("message = %q, want %q", resp.Message, tt.message)
			}
			if got := rec.Header().Get("X-Error-Code"); got != tt.code {
				t.Errorf("X-Error-Code = %q, want %q", got, tt.code)
			}
			if resp.RequestID != "req-test" {
				t.Errorf("request_id = %q, want req-test", resp.RequestID)
			}
		})
	}
}

func TestHandler_BoundaryRejectsBeforeComputation(t *testing.T) {
	h, obs := setupTestHandler(t)

	rec, _ := doRequest(t, h, http.MethodGet, "/service/squareRoot/pipe/-1", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if n := obs.totalComputations(); n != 0 {
		t.Errorf("computations = %d, want 0", n)
	}
	if obs.rejections["boundary:NM-ARG-4001"] != 1 {
		t.Errorf("rejections = %v, want one boundary:NM-ARG-4001", obs.rejections)
	}
}

func TestHandler_PipeRejectionDetails(t *testing.T) {
	h, obs := setupTestHandler(t)

	_, resp := doRequest(t, h, http.MethodGet, "/cube/x1", nil, nil)

	var details ErrorDetails
	if err := json.Unmarshal(resp.Details, &details); err != nil {
		t.Fatalf("details not decodable: %v", err)
	}
	if details.Param != "base" || details.Value != "x1" || details.Strategy != strategyIntegerPipe {
		t.Errorf("details = %+v", details)
	}
	if obs.rejections["integer_pipe:NM-ARG-4002"] != 1 {
		t.Errorf("rejections = %v", obs.rejections)
	}
}

func TestHandler_Echo(t *testing.T) {
	h, _ := setupTestHandler(t)

	tests := []struct {
		name        string
		target      string
		body        string
		contentType string
		want        string
	}{
		{"course object", "/course", `{"name": "Go", "hours": 12}`, "application/json", `Got course {"name":"Go","hours":12}`},
		{"course empty", "/course", "", "application/json", "Got course {}"},
		{"text object", "/text", `{"b":1,"a":[1, 2]}`, "application/json", `Got an object !! {"b":1,"a":[1,2]}`},
		{"text plain", "/text", `hi "there"`, "text/plain; charset=utf-8", `Got an object !! "hi \"there\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, h, http.MethodPost, tt.target, strings.NewReader(tt.body),
				map[string]string{"Content-Type": tt.contentType})
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
			}
			if got := dataString(t, resp); got != tt.want {
				t.Errorf("data = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler_EchoInvalidJSON(t *testing.T) {
	h, _ := setupTestHandler(t)

	rec, resp := doRequest(t, h, http.MethodPost, "/course", strings.NewReader(`{"broken":`),
		map[string]string{"Content-Type": "application/json"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp.Code != "NM-SYS-4000" {
		t.Errorf("code = %q, want NM-SYS-4000", resp.Code)
	}
}

func TestHandler_EchoBodyTooLarge(t *testing.T) {
	h, _ := setupTestHandler(t)

	big := bytes.Repeat([]byte("a"), maxBodyBytes+1)
	rec, _ := doRequest(t, h, http.MethodPost, "/text", bytes.NewReader(big),
		map[string]string{"Content-Type": "text/plain"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_Health(t *testing.T) {
	h, _ := setupTestHandler(t)

	for _, target := range []string{"/health", "/ready"} {
		rec, resp := doRequest(t, h, http.MethodGet, target, nil, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want 200", target, rec.Code)
		}
		var hr HealthResponse
		if err := json.Unmarshal(resp.Data, &hr); err != nil {
			t.Fatalf("%s data: %v", target, err)
		}
		if hr.Status == "" || hr.Time == "" {
			t.Errorf("%s health response = %+v", target, hr)
		}
	}

	rec, resp := doRequest(t, h, http.MethodGet, "/version", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("/version status = %d", rec.Code)
	}
	if !strings.Contains(string(resp.Data), `"version"`) {
		t.Errorf("/version data = %s", resp.Data)
	}
}

func TestHandler_MethodAndRouteMismatch(t *testing.T) {
	h, _ := setupTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cube/3", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /cube/3 status = %d, want 405", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope status = %d, want 404", rec.Code)
	}
}

func TestHandler_Idempotent(t *testing.T) {
	h, _ := setupTestHandler(t)

	_, first := doRequest(t, h, http.MethodGet, "/service/squareRoot/pipe/30", nil, nil)
	_, second := doRequest(t, h, http.MethodGet, "/service/squareRoot/pipe/30", nil, nil)
	if string(first.Data) != string(second.Data) {
		t.Errorf("repeated computation differs: %s vs %s", first.Data, second.Data)
	}
}

func TestErrorKindToHTTPStatus(t *testing.T) {
	if got := errorKindToHTTPStatus("invalid_argument"); got != http.StatusBadRequest {
		t.Errorf("invalid_argument -> %d", got)
	}
	if got := errorKindToHTTPStatus("bad_request"); got != http.StatusBadRequest {
		t.Errorf("bad_request -> %d", got)
	}
	if got := errorKindToHTTPStatus("internal"); got != http.StatusInternalServerError {
		t.Errorf("internal -> %d", got)
	}
}
