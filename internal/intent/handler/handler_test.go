package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rheadsz/voice-ai-agent/internal/intent/processor"
	"github.com/rheadsz/voice-ai-agent/internal/observability"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := observability.NewLogger()
	h := New(processor.New(logger), logger)

	r := gin.New()
	r.POST("/intent/report", h.HandleReportIntent)
	return r
}

func TestHandleReportIntent_AlwaysAcknowledges(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "realistic payload",
			body: `{"message":{"toolCalls":[{"function":{"arguments":{"intent":"interested","confidence":0.8}}}],"call":{"customer":{"number":"+15551234567"}}}}`,
		},
		{
			name: "empty message object",
			body: `{"message":{}}`,
		},
		{
			name: "empty body",
			body: ``,
		},
		{
			name: "not json",
			body: `<xml>nope</xml>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/intent/report", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("webhook must never reject, got status %d", w.Code)
			}

			var resp map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			if resp["ok"] != true {
				t.Errorf("expected ok true, got %v", resp["ok"])
			}
			if resp["message"] != "Intent logged successfully" {
				t.Errorf("unexpected message %v", resp["message"])
			}
		})
	}
}
