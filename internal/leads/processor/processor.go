package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rheadsz/voice-ai-agent/internal/observability"
	"github.com/rheadsz/voice-ai-agent/internal/store"
)

// recentLeadsLimit caps GET /leads to a fixed most-recent window
const recentLeadsLimit = 50

var ErrPhoneRequired = errors.New("phone is required")

// LeadStore defines the database operations required by LeadProcessor
type LeadStore interface {
	UpsertLead(ctx context.Context, params store.UpsertLeadParams) (store.Lead, error)
	ListRecentLeads(ctx context.Context, limit int) ([]store.Lead, error)
}

// UpsertLeadParams represents a lead create-or-update request
type UpsertLeadParams struct {
	OwnerName *string
	Phone     string
	Address   *string
}

type LeadProcessor struct {
	store  LeadStore
	logger *observability.Logger
}

func New(store LeadStore, logger *observability.Logger) LeadProcessor {
	return LeadProcessor{
		store:  store,
		logger: logger,
	}
}

// UpsertLead creates a lead, or merges into the existing row keyed on phone
func (p *LeadProcessor) UpsertLead(ctx context.Context, params UpsertLeadParams) (store.Lead, error) {
	if params.Phone == "" {
		return store.Lead{}, ErrPhoneRequired
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_phone", Value: params.Phone})

	lead, err := p.store.UpsertLead(ctx, store.UpsertLeadParams{
		OwnerName: params.OwnerName,
		Phone:     params.Phone,
		Address:   params.Address,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert lead", err)
		return store.Lead{}, fmt.Errorf("failed to upsert lead: %w", err)
	}

	return lead, nil
}

// ListRecentLeads returns the most recently called leads, at most 50
func (p *LeadProcessor) ListRecentLeads(ctx context.Context) ([]store.Lead, error) {
	leads, err := p.store.ListRecentLeads(ctx, recentLeadsLimit)
	if err != nil {
		p.logger.Error(ctx, "failed to list recent leads", err)
		return nil, fmt.Errorf("failed to list recent leads: %w", err)
	}
	return leads, nil
}
