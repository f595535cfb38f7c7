package handler

import (
	"net/http"

	"github.com/rheadsz/voice-ai-agent/internal/apierrors"
	"github.com/rheadsz/voice-ai-agent/internal/leads/processor"
	"github.com/rheadsz/voice-ai-agent/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.LeadProcessor
	logger    *observability.Logger
}

func New(processor processor.LeadProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// UpsertLeadRequest represents the HTTP request for creating or updating a lead
type UpsertLeadRequest struct {
	OwnerName *string `json:"owner_name"`
	Phone     string  `json:"phone" binding:"required"`
	Address   *string `json:"address"`
}

// UpsertLeadResponse is the row returned after an upsert
type UpsertLeadResponse struct {
	ID        int64   `json:"id"`
	OwnerName *string `json:"owner_name"`
	Phone     string  `json:"phone"`
	Address   *string `json:"address"`
}

// HandleUpsertLead handles POST /leads
func (h *Handler) HandleUpsertLead(c *gin.Context) {
	var req UpsertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	lead, err := h.processor.UpsertLead(c.Request.Context(), processor.UpsertLeadParams{
		OwnerName: req.OwnerName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpsertLeadResponse{
		ID:        lead.ID,
		OwnerName: lead.OwnerName,
		Phone:     lead.Phone,
		Address:   lead.Address,
	})
}

// HandleListLeads handles GET /leads
func (h *Handler) HandleListLeads(c *gin.Context) {
	leads, err := h.processor.ListRecentLeads(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, leads)
}
