package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler()

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "client-intake-sync", health.Service)
	assert.NotEmpty(t, health.Timestamp)
}
