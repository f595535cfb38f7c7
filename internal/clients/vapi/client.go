package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rheadsz/voice-ai-agent/internal/observability"
)

const callPath = "/call"

// CreateCallParams carries the destination number and the per-call variables
// the assistant reads during the conversation.
type CreateCallParams struct {
	To        string
	OwnerName string
	Address   string
}

// Client calls the VAPI outbound-call API
type Client struct {
	apiKey        string
	assistantID   string
	phoneNumberID string
	baseURL       string
	httpClient    *http.Client
	logger        *observability.Logger
}

// NewClient creates a new VAPI API client
func NewClient(apiKey, assistantID, phoneNumberID, baseURL string, logger *observability.Logger) *Client {
	return &Client{
		apiKey:        apiKey,
		assistantID:   assistantID,
		phoneNumberID: phoneNumberID,
		baseURL:       baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// CreateCall asks the provider to dial an outbound call. The provider's raw
// JSON response body is returned verbatim, whatever its status code; only
// transport-level failures are errors.
func (c *Client) CreateCall(ctx context.Context, params CreateCallParams) (json.RawMessage, error) {
	// variableValues must always carry both keys, empty string when absent
	payload := map[string]interface{}{
		"assistantId":   c.assistantID,
		"phoneNumberId": c.phoneNumberID,
		"customer": map[string]interface{}{
			"number": params.To,
		},
		"assistantOverrides": map[string]interface{}{
			"variableValues": map[string]string{
				"owner_name": params.OwnerName,
				"address":    params.Address,
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to marshal call request", err)
		return nil, fmt.Errorf("failed to prepare call request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+callPath, bytes.NewBuffer(jsonPayload))
	if err != nil {
		c.logger.Error(ctx, "failed to create call request", err)
		return nil, fmt.Errorf("failed to create call request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call VAPI", err)
		return nil, fmt.Errorf("failed to call voice provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(ctx, "failed to read VAPI response body", err)
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("VAPI response: status=%d body=%s", resp.StatusCode, string(body)))

	return body, nil
}
