// Package handler provides HTTP request handlers for Numera.
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/yndnr/numera-go/internal/core/domain"
)

// maxBodyBytes bounds request bodies accepted by the echo endpoints.
const maxBodyBytes = 1 << 20

// handleHello handles GET /.
func (h *Handler) handleHello(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, "Hola Vitae")
}

// handleTest handles GET /test.
func (h *Handler) handleTest(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, "Hola Test")
}

// handleParam handles GET /param/{id}.
func (h *Handler) handleParam(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, "Param: "+r.PathValue("id")+" of type string")
}

// handleCourse handles POST /course.
func (h *Handler) handleCourse(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.writeBodyError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, "Got course "+body)
}

// handleText handles POST /text.
func (h *Handler) handleText(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.writeBodyError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, "Got an object !! "+body)
}

// readBody returns the request body as compact JSON text.
//
// JSON bodies keep their key order. A text/plain body is returned as a JSON
// string. An empty body reads as "{}".
func readBody(w http.ResponseWriter, r *http.Request) (string, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return "", domain.ErrBadRequest.WithDetails("body too large or unreadable").WithCause(err)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "text/plain" {
		quoted, err := json.Marshal(string(raw))
		if err != nil {
			return "", domain.ErrBadRequest.WithCause(err)
		}
		return string(quoted), nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return "{}", nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", domain.ErrBadRequest.WithDetails("invalid JSON body").WithCause(err)
	}
	return buf.String(), nil
}

func (h *Handler) writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeError(w, r, errorKindToHTTPStatus(de.Kind), de.Code, de.Message, de.Details)
}
