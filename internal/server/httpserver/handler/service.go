// Package handler provides HTTP request handlers for Numera.
package handler

import (
	"net/http"

	"github.com/yndnr/numera-go/internal/core/domain"
)

// handleServiceHello handles GET /service/.
func (h *Handler) handleServiceHello(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.calc.SelectHello())
}

// handleServiceSquareRoot handles GET /service/squareRoot/{someNumber}.
// The service checks the operand inline; its error is caught here and
// reported as a 400 with the same message.
func (h *Handler) handleServiceSquareRoot(w http.ResponseWriter, r *http.Request) {
	n, ok := pathValue(h, w, r, "someNumber", parseIntPipe)
	if !ok {
		return
	}

	root, err := h.calc.CalculateSquareRoot(n)
	if err != nil {
		de := domain.AsDomainError(err)
		if de == nil {
			h.handleServiceError(w, r, err)
			return
		}
		h.writeError(w, r, http.StatusBadRequest, de.Code, de.Message, nil)
		return
	}
	h.writeJSON(w, r, http.StatusOK, formatNumber(root))
}

// handleServiceSquareRootPipe handles GET /service/squareRoot/pipe/{someNumber}.
// Boundary validation rejects bad operands before the service is called.
func (h *Handler) handleServiceSquareRootPipe(w http.ResponseWriter, r *http.Request) {
	n, ok := pathValue(h, w, r, "someNumber", h.positiveNumberPipe())
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, formatNumber(h.calc.CalculateSquareRootSafe(n)))
}

// handleServiceSquareRootFilter handles GET /service/squareRoot/filter/{someNumber}.
// Errors are left to the business-error filter.
func (h *Handler) handleServiceSquareRootFilter(w http.ResponseWriter, r *http.Request) (any, bool, error) {
	n, ok := pathValue(h, w, r, "someNumber", parseIntPipe)
	if !ok {
		return nil, true, nil
	}
	root, err := h.calc.CalculateSquareRoot(n)
	if err != nil {
		return nil, false, err
	}
	return formatNumber(root), false, nil
}
