// Package handler provides HTTP request handlers for Numera.
package handler

import (
	"net/http"

	"github.com/yndnr/numera-go/internal/core/domain"
	"github.com/yndnr/numera-go/internal/telemetry/logger"
)

// resultFunc is a handler body that returns its result instead of writing it.
// Pipe rejections are written by the body itself, in which case it returns
// handled=true.
type resultFunc func(w http.ResponseWriter, r *http.Request) (data any, handled bool, err error)

// withBusinessErrorFilter turns a resultFunc into an http.HandlerFunc.
// Domain errors of an invalid-argument kind become 400 responses carrying
// the error message; anything else goes through handleServiceError.
func (h *Handler) withBusinessErrorFilter(fn resultFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, handled, err := fn(w, r)
		if handled {
			return
		}
		if err != nil {
			de := domain.AsDomainError(err)
			if de == nil || de.Kind != domain.KindInvalidArgument {
				h.handleServiceError(w, r, err)
				return
			}
			logger.L(r.Context()).Debug("business error filtered", "code", de.Code, "path", r.URL.Path)
			h.writeDomainError(w, r, de, nil)
			return
		}
		h.writeJSON(w, r, http.StatusOK, data)
	}
}
