package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"client-intake-sync/internal/models"
	"client-intake-sync/internal/utils"
)

const leadPath = "/services/data/v61.0/sobjects/Lead"

// PostResponse is Salesforce's answer to a successful sObject create.
type PostResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

// CreateLead POSTs the lead record to the token's instance with bearer auth.
// No retry and no idempotency key: a transient failure here can at worst
// produce a duplicate lead on manual re-submission.
func (c *Client) CreateLead(ctx context.Context, token *TokenResponse, lead models.LeadRecord) (*PostResponse, error) {
	logger := utils.GetLogger()

	if token == nil || token.InstanceURL == "" {
		return nil, fmt.Errorf("%w: no instance URL to submit lead to", models.ErrAuth)
	}

	payload, err := json.Marshal(lead)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal lead: %v", models.ErrSubmission, err)
	}

	endpoint := strings.TrimSuffix(token.InstanceURL, "/") + leadPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create lead request: %v", models.ErrSubmission, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Lead creation request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", models.ErrSubmission, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read lead response: %v", models.ErrSubmission, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("Lead creation rejected",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, fmt.Errorf("%w: status %d", models.ErrSubmission, resp.StatusCode)
	}

	var created PostResponse
	if err := unmarshalJSON(body, &created); err != nil {
		return nil, fmt.Errorf("%w: malformed lead response: %v", models.ErrSubmission, err)
	}

	logger.Info("Lead created",
		zap.String("leadId", created.ID),
		zap.String("email", lead.Email),
	)

	return &created, nil
}

// unmarshalJSON decodes body into v, tolerating an empty body for endpoints
// that answer 204.
func unmarshalJSON(body []byte, v interface{}) error {
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}
