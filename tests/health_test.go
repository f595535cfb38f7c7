//go:build integration
// +build integration

package tests

import (
	"net/http"
	"testing"
)

func TestAPI_Health(t *testing.T) {
	resp, body := makeRequest(t, http.MethodGet, "/healthz", nil, nil)
	assertStatusCode(t, resp, http.StatusOK)

	var response map[string]interface{}
	parseJSONResponse(t, body, &response)

	ok, isBool := response["ok"].(bool)
	if !isBool || !ok {
		t.Errorf("expected {ok: true}, got %v", response)
	}
}
