package bootstrap

import (
	"context"
	"fmt"

	"github.com/rheadsz/voice-ai-agent/internal/config"
	"github.com/rheadsz/voice-ai-agent/internal/observability"
	"github.com/rheadsz/voice-ai-agent/internal/store"

	callsHandler "github.com/rheadsz/voice-ai-agent/internal/calls/handler"
	callsProcessor "github.com/rheadsz/voice-ai-agent/internal/calls/processor"
	"github.com/rheadsz/voice-ai-agent/internal/clients/vapi"
	intentHandler "github.com/rheadsz/voice-ai-agent/internal/intent/handler"
	intentProcessor "github.com/rheadsz/voice-ai-agent/internal/intent/processor"
	leadsHandler "github.com/rheadsz/voice-ai-agent/internal/leads/handler"
	leadsProcessor "github.com/rheadsz/voice-ai-agent/internal/leads/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	CallHandler   callsHandler.Handler
	IntentHandler intentHandler.Handler
	LeadHandler   leadsHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize the voice provider client
	vapiClient := vapi.NewClient(
		cfg.Vapi.APIKey,
		cfg.Vapi.AssistantID,
		cfg.Vapi.PhoneNumberID,
		cfg.Vapi.BaseURL,
		logger,
	)

	// Initialize call processor and handler
	callProc := callsProcessor.New(vapiClient, cfg.Vapi, logger)
	deps.CallHandler = callsHandler.New(callProc, logger)

	// Initialize intent processor and handler
	intentProc := intentProcessor.New(logger)
	deps.IntentHandler = intentHandler.New(intentProc, logger)

	// Initialize lead processor and handler
	leadProc := leadsProcessor.New(&deps.Store, logger)
	deps.LeadHandler = leadsHandler.New(leadProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close store", err)
	}
}
