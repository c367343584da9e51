// Package handler provides HTTP request handlers for Numera.
package handler

import (
	"net/http"

	"github.com/yndnr/numera-go/internal/core/domain"
	"github.com/yndnr/numera-go/internal/core/validator"
)

// Strategy labels reported for pipe rejections.
const (
	strategyIntegerPipe  = "integer_pipe"
	strategyPositivePipe = "boundary"
)

// pipe converts raw path or query text into a typed operand, or rejects it.
// A rejected operand never reaches the handler body.
type pipe[T any] struct {
	name    string
	convert func(raw string) (T, error)
}

// parseIntPipe accepts integer text only.
var parseIntPipe = pipe[float64]{
	name:    strategyIntegerPipe,
	convert: validator.ParseInteger,
}

// positiveNumberPipe runs boundary validation: numeric text first, then
// non-negativity.
func (h *Handler) positiveNumberPipe() pipe[float64] {
	return pipe[float64]{
		name:    strategyPositivePipe,
		convert: h.calc.NonNegativeOperand,
	}
}

// pathValue runs p over the named path parameter. On rejection it writes
// the 400 response and returns ok=false.
func pathValue[T any](h *Handler, w http.ResponseWriter, r *http.Request, param string, p pipe[T]) (v T, ok bool) {
	return applyPipe(h, w, r, param, r.PathValue(param), p)
}

// queryValue runs p over the named query parameter.
func queryValue[T any](h *Handler, w http.ResponseWriter, r *http.Request, param string, p pipe[T]) (v T, ok bool) {
	return applyPipe(h, w, r, param, r.URL.Query().Get(param), p)
}

func applyPipe[T any](h *Handler, w http.ResponseWriter, r *http.Request, param, raw string, p pipe[T]) (T, bool) {
	v, err := p.convert(raw)
	if err == nil {
		return v, true
	}

	de := domain.AsBoundaryError(err)
	if de == nil {
		h.handleServiceError(w, r, err)
		return v, false
	}

	// The boundary pipe reports through the service observer already.
	if p.name != strategyPositivePipe && h.observer != nil {
		h.observer.ObserveRejection(p.name, de.Code)
	}

	h.writeDomainError(w, r, de, ErrorDetails{Param: param, Value: raw, Strategy: p.name})
	return v, false
}
