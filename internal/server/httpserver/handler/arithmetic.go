// Package handler provides HTTP request handlers for Numera.
package handler

import (
	"fmt"
	"net/http"

	"github.com/yndnr/numera-go/internal/core/calculator"
	"github.com/yndnr/numera-go/internal/core/domain"
	"github.com/yndnr/numera-go/internal/core/service"
	"github.com/yndnr/numera-go/internal/core/validator"
)

// handleSquare handles GET /square/{someParam}.
// The parameter is not validated: unreadable text squares to NaN.
func (h *Handler) handleSquare(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("someParam")
	square := calculator.Square(looseNumber(raw))
	h.observe(service.OpSquare)
	h.writeJSON(w, r, http.StatusOK,
		fmt.Sprintf("Square of %s of type string is %s", raw, formatNumber(square)))
}

// handleSquarePipe handles GET /square/pipe/{someNumber}.
func (h *Handler) handleSquarePipe(w http.ResponseWriter, r *http.Request) {
	n, ok := pathValue(h, w, r, "someNumber", parseIntPipe)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK,
		fmt.Sprintf("Square of %s of type number is %s", formatNumber(n), formatNumber(h.calc.Square(n))))
}

// handleMultiplyPipe handles GET /multiply/pipe/{oneNumber}/{otherNumber}.
func (h *Handler) handleMultiplyPipe(w http.ResponseWriter, r *http.Request) {
	a, ok := pathValue(h, w, r, "oneNumber", parseIntPipe)
	if !ok {
		return
	}
	b, ok := pathValue(h, w, r, "otherNumber", parseIntPipe)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, multiplyMessage(a, b, h.calc.Multiply(a, b)))
}

// handleMultiplyQuery handles GET /multiply/query?a=&b=.
func (h *Handler) handleMultiplyQuery(w http.ResponseWriter, r *http.Request) {
	a, ok := queryValue(h, w, r, "a", parseIntPipe)
	if !ok {
		return
	}
	b, ok := queryValue(h, w, r, "b", parseIntPipe)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, multiplyMessage(a, b, h.calc.Multiply(a, b)))
}

func multiplyMessage(a, b, product float64) string {
	return fmt.Sprintf("Multiply of %s and %s of type number and number is %s",
		formatNumber(a), formatNumber(b), formatNumber(product))
}

// handleCube handles GET /cube/{base}.
func (h *Handler) handleCube(w http.ResponseWriter, r *http.Request) {
	base, ok := pathValue(h, w, r, "base", parseIntPipe)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, h.calc.Cube(base))
}

// handleSquareRoot handles GET /squareRoot/{someNumber}.
// The operand passes the integer pipe and is then checked inline here.
func (h *Handler) handleSquareRoot(w http.ResponseWriter, r *http.Request) {
	n, ok := pathValue(h, w, r, "someNumber", parseIntPipe)
	if !ok {
		return
	}

	if err := validator.NonNegative(n); err != nil {
		if h.observer != nil {
			h.observer.ObserveRejection(validator.StrategyInline.String(), domain.GetErrorCode(err))
		}
		h.writeDomainError(w, r, domain.AsDomainError(err), nil)
		return
	}

	h.observe(service.OpSquareRoot)
	h.writeJSON(w, r, http.StatusOK, calculator.SquareRoot(n))
}

func (h *Handler) observe(op string) {
	if h.observer != nil {
		h.observer.ObserveComputation(op)
	}
}
