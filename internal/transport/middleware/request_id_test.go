package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/heartmarshall/timesheet-relay/pkg/ctxutil"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses incoming id", incoming: "edge-7f3a", keep: true},
		{name: "reuses incoming uuid", incoming: uuid.NewString(), keep: true},
		{name: "generates when absent", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxRequestIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxID string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = ctxutil.RequestIDFromCtx(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/webhooks/timesheet", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			RequestID()(handler).ServeHTTP(rec, req)

			header := rec.Header().Get(RequestIDHeader)
			if header != ctxID {
				t.Errorf("header %q and context %q differ", header, ctxID)
			}

			if tt.keep {
				if ctxID != tt.incoming {
					t.Errorf("request id = %q, want %q", ctxID, tt.incoming)
				}
				return
			}
			if _, err := uuid.Parse(ctxID); err != nil {
				t.Errorf("expected generated UUID, got %q: %v", ctxID, err)
			}
		})
	}
}
