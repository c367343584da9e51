// Package handler provides HTTP request handlers for Numera.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yndnr/numera-go/internal/core/domain"
	"github.com/yndnr/numera-go/internal/core/service"
	"github.com/yndnr/numera-go/internal/telemetry/logger"
)

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	calc     *service.CalculatorService
	observer service.Observer
	logger   *slog.Logger
	mux      *http.ServeMux
}

// New creates a new Handler. observer may be nil.
func New(calc *service.CalculatorService, observer service.Observer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		calc:     calc,
		observer: observer,
		logger:   logger,
		mux:      http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health endpoints
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)
	h.mux.HandleFunc("GET /version", h.handleVersion)

	// Greeting and echo endpoints
	h.mux.HandleFunc("GET /{$}", h.handleHello)
	h.mux.HandleFunc("GET /test", h.handleTest)
	h.mux.HandleFunc("GET /param/{id}", h.handleParam)
	h.mux.HandleFunc("POST /course", h.handleCourse)
	h.mux.HandleFunc("POST /text", h.handleText)

	// Arithmetic endpoints
	h.mux.HandleFunc("GET /square/{someParam}", h.handleSquare)
	h.mux.HandleFunc("GET /square/pipe/{someNumber}", h.handleSquarePipe)
	h.mux.HandleFunc("GET /multiply/pipe/{oneNumber}/{otherNumber}", h.handleMultiplyPipe)
	h.mux.HandleFunc("GET /multiply/query", h.handleMultiplyQuery)
	h.mux.HandleFunc("GET /cube/{base}", h.handleCube)
	h.mux.HandleFunc("GET /squareRoot/{someNumber}", h.handleSquareRoot)

	// Service-backed endpoints
	h.mux.HandleFunc("GET /service", h.handleServiceHello)
	h.mux.HandleFunc("GET /service/{$}", h.handleServiceHello)
	h.mux.HandleFunc("GET /service/squareRoot/{someNumber}", h.handleServiceSquareRoot)
	h.mux.HandleFunc("GET /service/squareRoot/pipe/{someNumber}", h.handleServiceSquareRootPipe)
	h.mux.HandleFunc("GET /service/squareRoot/filter/{someNumber}",
		h.withBusinessErrorFilter(h.handleServiceSquareRootFilter))
}

// writeJSON writes a JSON response with standard envelope format.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	requestID := getRequestID(w, r)
	response := NewResponse(requestID, data)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response with standard envelope format.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	requestID := getRequestID(w, r)
	response := NewErrorResponse(requestID, code, message, details)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode error response", "error", err)
	}
}

// writeDomainError writes de with the status derived from its kind.
// The message goes out verbatim.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, de *domain.DomainError, details any) {
	h.writeError(w, r, errorKindToHTTPStatus(de.Kind), de.Code, de.Message, details)
}

// handleServiceError converts an error nobody mapped into an HTTP response.
// Without a filter, even a domain error is reported as internal.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger.L(r.Context()).Error("unhandled error", "error", err, "path", r.URL.Path)
	h.writeDomainError(w, r, domain.ErrInternalServer, nil)
}

// errorKindToHTTPStatus maps error kinds to HTTP status codes.
func errorKindToHTTPStatus(kind domain.Kind) int {
	switch kind {
	case domain.KindInvalidArgument, domain.KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getRequestID returns the request ID set by the RequestID middleware.
func getRequestID(w http.ResponseWriter, r *http.Request) string {
	if reqID := logger.RequestIDFromContext(r.Context()); reqID != "" {
		return reqID
	}
	return w.Header().Get("X-Request-ID")
}
