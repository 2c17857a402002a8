package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	appConfig "client-intake-sync/internal/config"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	stage string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	stage := "unknown"
	if cfg, err := appConfig.Load(); err == nil {
		stage = cfg.Stage
	}
	return &HealthHandler{stage: stage}
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Stage     string `json:"stage"`
}

// Handle processes health check requests.
func (h *HealthHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := map[string]string{
		"Access-Control-Allow-Origin": "*",
		"Content-Type":                "application/json",
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "client-intake-sync",
		Stage:     h.stage,
	}

	body, _ := json.Marshal(response)

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers,
		Body:       string(body),
	}, nil
}
