// Package handlers provides the Lambda handlers for the client intake sync service.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	appConfig "client-intake-sync/internal/config"
	"client-intake-sync/internal/models"
	"client-intake-sync/internal/services/archive"
	"client-intake-sync/internal/services/intake"
	"client-intake-sync/internal/services/notify"
	"client-intake-sync/internal/services/salesforce"
	"client-intake-sync/internal/services/secrets"
	"client-intake-sync/internal/utils"
)

// successBody is the JSON string body returned on a successful submission.
const successBody = `"Client Loaded to Salesforce Successfully!"`

// SecretSource fetches the Salesforce credentials.
type SecretSource interface {
	FetchCredentials(ctx context.Context) (models.Credentials, error)
}

// TokenExchanger trades a signed assertion for a bearer token.
type TokenExchanger interface {
	ExchangeToken(ctx context.Context, creds models.Credentials) (*salesforce.TokenResponse, error)
}

// LeadCreator creates the Lead record in the CRM.
type LeadCreator interface {
	CreateLead(ctx context.Context, token *salesforce.TokenResponse, lead models.LeadRecord) (*salesforce.PostResponse, error)
}

// Archiver stores the raw submission payload. Optional.
type Archiver interface {
	StoreSubmission(ctx context.Context, submissionID string, payload []byte) error
}

// Notifier emails staff about a created lead. Optional.
type Notifier interface {
	SendLeadCreated(ctx context.Context, client models.ClientData, leadID string) error
}

// IntakeHandler runs the submission pipeline: extract, authenticate, submit.
type IntakeHandler struct {
	secrets  SecretSource
	tokens   TokenExchanger
	leads    LeadCreator
	archiver Archiver // nil when archival is not configured
	notifier Notifier // nil when notification is not configured
}

// NewIntakeHandler creates an intake handler with injected dependencies.
// archiver and notifier may be nil.
func NewIntakeHandler(sec SecretSource, tokens TokenExchanger, leads LeadCreator, archiver Archiver, notifier Notifier) *IntakeHandler {
	return &IntakeHandler{
		secrets:  sec,
		tokens:   tokens,
		leads:    leads,
		archiver: archiver,
		notifier: notifier,
	}
}

// NewIntakeHandlerFromConfig wires the handler from environment config and
// the default AWS credential chain.
func NewIntakeHandlerFromConfig(ctx context.Context) (*IntakeHandler, error) {
	cfg, err := appConfig.Load()
	if err != nil {
		return nil, err
	}

	secretSource, err := secrets.NewFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sf := salesforce.New()

	var archiver Archiver
	if cfg.ArchiveEnabled() {
		svc, err := archive.NewFromConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		archiver = svc
	}

	var notifier Notifier
	if cfg.NotifyEnabled() {
		svc, err := notify.NewFromConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		notifier = svc
	}

	return NewIntakeHandler(secretSource, sf, sf, archiver, notifier), nil
}

// Handle processes one API Gateway form-submission event.
func (h *IntakeHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := utils.GetLogger()

	// CORS headers
	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,Authorization",
		"Access-Control-Allow-Methods": "POST,OPTIONS",
		"Content-Type":                 "application/json",
	}

	// Handle CORS preflight
	if request.HTTPMethod == "OPTIONS" {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    headers,
		}, nil
	}

	submissionID := uuid.New().String()
	logger = logger.With(utils.String("submissionId", submissionID))

	var event models.IntakeEvent
	if err := json.Unmarshal([]byte(request.Body), &event); err != nil {
		logger.Error("Invalid JSON in request body", utils.Error(err))
		return errorResponse(headers, http.StatusBadRequest, "Invalid JSON in request body")
	}

	// Field extraction runs before any outbound call: a submission missing
	// a required question fails without touching secrets or Salesforce.
	client, err := intake.ExtractClientData(event.Submission)
	if err != nil {
		logger.Error("Failed to extract client data", utils.Error(err))
		return errorResponse(headers, statusFor(err), err.Error())
	}

	if h.archiver != nil {
		if err := h.archiver.StoreSubmission(ctx, submissionID, []byte(request.Body)); err != nil {
			logger.Warn("Submission archival failed", utils.Error(err))
		}
	}

	creds, err := h.secrets.FetchCredentials(ctx)
	if err != nil {
		logger.Error("Failed to fetch credentials", utils.Error(err))
		return errorResponse(headers, statusFor(err), "Failed to retrieve Salesforce credentials")
	}

	token, err := h.tokens.ExchangeToken(ctx, creds)
	if err != nil {
		logger.Error("Token exchange failed", utils.Error(err))
		return errorResponse(headers, statusFor(err), "Salesforce authentication failed")
	}

	created, err := h.leads.CreateLead(ctx, token, models.NewLeadRecord(client))
	if err != nil {
		logger.Error("Lead creation failed", utils.Error(err))
		return errorResponse(headers, statusFor(err), "Failed to create lead in Salesforce")
	}

	if h.notifier != nil {
		if err := h.notifier.SendLeadCreated(ctx, client, created.ID); err != nil {
			logger.Warn("Lead notification failed", utils.Error(err))
		}
	}

	logger.Info("Client loaded to Salesforce",
		utils.String("leadId", created.ID),
		utils.String("stateCode", client.Address.StateCode),
	)

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers,
		Body:       successBody,
	}, nil
}

// statusFor maps the pipeline error taxonomy onto HTTP status codes:
// client-input failures are 400, upstream failures 502, secret store 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrMissingField), errors.Is(err, models.ErrUnknownState):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrAuth), errors.Is(err, models.ErrSubmission):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrSecretRetrieval):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse builds a JSON error response with the shared headers.
func errorResponse(headers map[string]string, status int, message string) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": message})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}, nil
}
