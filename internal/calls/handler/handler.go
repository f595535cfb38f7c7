package handler

import (
	"net/http"

	"github.com/rheadsz/voice-ai-agent/internal/apierrors"
	"github.com/rheadsz/voice-ai-agent/internal/calls/processor"
	"github.com/rheadsz/voice-ai-agent/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CallProcessor
	logger    *observability.Logger
}

func New(processor processor.CallProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// StartCallRequest represents the HTTP request for starting an outbound call
type StartCallRequest struct {
	To        string  `json:"to" binding:"required"`
	OwnerName *string `json:"owner_name"`
	Address   *string `json:"address"`
}

// HandleStartCall handles POST /start-call
func (h *Handler) HandleStartCall(c *gin.Context) {
	var req StartCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.processor.StartCall(c.Request.Context(), processor.StartCallParams{
		To:        req.To,
		OwnerName: req.OwnerName,
		Address:   req.Address,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	// Credential misconfiguration keeps the original contract: HTTP 200
	// with an ok:false payload.
	if !result.Ok {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": result.ErrorMessage})
		return
	}

	// Pass the provider's JSON through verbatim.
	c.Data(http.StatusOK, "application/json", result.ProviderResponse)
}
