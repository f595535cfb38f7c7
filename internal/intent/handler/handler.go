package handler

import (
	"io"
	"net/http"

	"github.com/rheadsz/voice-ai-agent/internal/intent/processor"
	"github.com/rheadsz/voice-ai-agent/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.IntentProcessor
	logger    *observability.Logger
}

func New(processor processor.IntentProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleReportIntent handles POST /intent/report, the provider's webhook.
// The receiver never rejects: malformed or empty payloads are still
// acknowledged so the provider does not retry or disable the webhook.
// Note: the provider does not sign this callback and the original service
// did not verify its origin; that gap is carried forward knowingly.
func (h *Handler) HandleReportIntent(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.InfoWithError(ctx, "failed to read intent webhook body", err)
		body = nil
	}

	h.processor.ReportIntent(ctx, body)

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Intent logged successfully"})
}
