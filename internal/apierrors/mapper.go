package apierrors

import (
	"errors"

	callsProcessor "github.com/rheadsz/voice-ai-agent/internal/calls/processor"
	leadsProcessor "github.com/rheadsz/voice-ai-agent/internal/leads/processor"
	"github.com/rheadsz/voice-ai-agent/internal/store"

	"github.com/gin-gonic/gin"
)

// RespondWithError converts domain/processor errors to HTTP responses.
// Mapping is centralized here so every handler surfaces the same contract:
// validation failures become 400s, missing resources 404s, and everything
// else a sanitized 500.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, leadsProcessor.ErrPhoneRequired):
		BadRequest(c, "PHONE_REQUIRED", "phone is required")

	case errors.Is(err, callsProcessor.ErrDestinationRequired):
		BadRequest(c, "TO_REQUIRED", "to is required")

	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "Resource not found")

	default:
		InternalError(c, err)
	}
}
