package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/yndnr/numera-go/internal/core/domain"
)

func TestWithBusinessErrorFilter(t *testing.T) {
	h, _ := setupTestHandler(t)

	tests := []struct {
		name       string
		fn         resultFunc
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			fn: func(http.ResponseWriter, *http.Request) (any, bool, error) {
				return "ok", false, nil
			},
			wantStatus: http.StatusOK,
			wantCode:   "OK",
		},
		{
			name: "invalid argument becomes 400",
			fn: func(http.ResponseWriter, *http.Request) (any, bool, error) {
				return nil, false, domain.ErrNegativeNumber
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "NM-ARG-4001",
		},
		{
			name: "internal domain error stays 500",
			fn: func(http.ResponseWriter, *http.Request) (any, bool, error) {
				return nil, false, domain.ErrInternalServer
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "NM-SYS-5000",
		},
		{
			name: "foreign error is 500",
			fn: func(http.ResponseWriter, *http.Request) (any, bool, error) {
				return nil, false, errors.New("boom")
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "NM-SYS-5000",
		},
		{
			name: "handled response is left alone",
			fn: func(w http.ResponseWriter, _ *http.Request) (any, bool, error) {
				w.WriteHeader(http.StatusTeapot)
				return nil, true, nil
			},
			wantStatus: http.StatusTeapot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, h.withBusinessErrorFilter(tt.fn), http.MethodGet, "/x", nil, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
		})
	}
}

func TestWithBusinessErrorFilter_KeepsMessage(t *testing.T) {
	h, _ := setupTestHandler(t)
	fn := func(http.ResponseWriter, *http.Request) (any, bool, error) {
		return nil, false, domain.ErrNegativeNumber.WithDetails("operand -4")
	}

	_, resp := doRequest(t, h.withBusinessErrorFilter(fn), http.MethodGet, "/x", nil, nil)
	if resp.Message != "Negative number" {
		t.Errorf("message = %q, want %q", resp.Message, "Negative number")
	}
}
