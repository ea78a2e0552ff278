package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/periodic-api/internal/api/shared"
	"github.com/phrazzld/periodic-api/internal/platform/logger"
)

func TestTrace(t *testing.T) {
	t.Parallel()

	const incoming = "6f1c1d52-3a40-4b8e-9c9b-0d6d7b0b6c2e"

	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{"generates_when_absent", "", false},
		{"reuses_valid_uuid", incoming, true},
		{"replaces_invalid_value", "not-a-uuid", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			log, buf := logger.NewTestLogger(t)
			var seen string
			handler := Trace(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = shared.GetTraceID(r.Context())
				logger.FromContext(r.Context()).Info("inside handler")
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/elements", nil)
			if tc.header != "" {
				req.Header.Set(shared.TraceIDHeader, tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rr.Header().Get(shared.TraceIDHeader))
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
			if tc.reuse {
				assert.Equal(t, incoming, seen)
			} else {
				assert.NotEqual(t, tc.header, seen)
			}

			entries, err := buf.Entries()
			require.NoError(t, err)
			var found bool
			for _, e := range entries {
				if e["msg"] == "inside handler" {
					found = true
					assert.Equal(t, seen, e["trace_id"])
				}
			}
			assert.True(t, found, "handler log entry should carry the trace id")
		})
	}
}
