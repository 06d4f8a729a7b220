package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmrzaf/seeder/internal/logging"
)

func TestLoggingMiddleware_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithWriter("info", &buf)

	h := loggingMiddleware(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", "req-1")
		http.Error(w, "nope", http.StatusBadRequest)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" || entry["status"] != float64(400) || entry["request_id"] != "req-1" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}
