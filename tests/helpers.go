//go:build integration
// +build integration

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var baseURL string

func init() {
	baseURL = os.Getenv("TEST_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
}

var httpClient = &http.Client{Timeout: 35 * time.Second}

// makeRequest performs an HTTP request against the running service and
// returns the response plus its fully read body.
func makeRequest(t *testing.T, method, path string, body interface{}, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	require.NoError(t, err, "failed to create request")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := httpClient.Do(req)
	require.NoError(t, err, "request failed")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	return resp, respBody
}

// assertStatusCode fails the test when the response status differs
func assertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	require.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// parseJSONResponse unmarshals a response body into target
func parseJSONResponse(t *testing.T, body []byte, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, target), "failed to parse JSON response: %s", string(body))
}

// uniquePhone returns a phone number unlikely to collide across test runs
func uniquePhone() string {
	return fmt.Sprintf("+1555%07d", time.Now().UnixNano()%10000000)
}
