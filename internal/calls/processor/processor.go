package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rheadsz/voice-ai-agent/internal/clients/vapi"
	"github.com/rheadsz/voice-ai-agent/internal/config"
	"github.com/rheadsz/voice-ai-agent/internal/observability"
)

var ErrDestinationRequired = errors.New("destination number is required")

// CallClient defines the voice-provider operations required by CallProcessor
type CallClient interface {
	CreateCall(ctx context.Context, params vapi.CreateCallParams) (json.RawMessage, error)
}

// StartCallParams represents a request to start an outbound call
type StartCallParams struct {
	To        string
	OwnerName *string
	Address   *string
}

// StartCallResult is the outcome of a start-call attempt. When the provider
// credentials are not configured Ok is false and ErrorMessage carries the
// reason; the HTTP layer reports that as a payload, not a failure status.
type StartCallResult struct {
	Ok               bool
	ErrorMessage     string
	ProviderResponse json.RawMessage
}

type CallProcessor struct {
	client     CallClient
	vapiConfig config.VapiConfig
	logger     *observability.Logger
}

func New(client CallClient, vapiConfig config.VapiConfig, logger *observability.Logger) CallProcessor {
	return CallProcessor{
		client:     client,
		vapiConfig: vapiConfig,
		logger:     logger,
	}
}

// StartCall validates configuration, then asks the provider to dial the
// destination. Credential checks happen before any network call.
func (p *CallProcessor) StartCall(ctx context.Context, params StartCallParams) (StartCallResult, error) {
	if params.To == "" {
		return StartCallResult{}, ErrDestinationRequired
	}

	if p.vapiConfig.APIKey == "" || p.vapiConfig.AssistantID == "" {
		p.logger.Warn(ctx, "start-call rejected: VAPI credentials not configured")
		return StartCallResult{ErrorMessage: "VAPI_API_KEY or VAPI_AGENT_ID missing"}, nil
	}

	if p.vapiConfig.PhoneNumberID == "" {
		p.logger.Warn(ctx, "start-call rejected: VAPI phone number id not configured")
		return StartCallResult{ErrorMessage: "VAPI_PHONE_NUMBER_ID missing"}, nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_to", Value: params.To})

	raw, err := p.client.CreateCall(ctx, vapi.CreateCallParams{
		To:        params.To,
		OwnerName: stringValue(params.OwnerName),
		Address:   stringValue(params.Address),
	})
	if err != nil {
		return StartCallResult{}, fmt.Errorf("failed to start call: %w", err)
	}

	return StartCallResult{Ok: true, ProviderResponse: raw}, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
