// Package salesforce implements the OAuth2 JWT-bearer token exchange and
// Lead creation against the Salesforce REST API.
package salesforce

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"client-intake-sync/internal/models"
	"client-intake-sync/internal/utils"
)

const (
	// assertionLifetime is the JWT assertion's validity window; Salesforce
	// rejects assertions older than a few minutes anyway.
	assertionLifetime = 180 * time.Second

	grantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	tokenPath = "/services/oauth2/token"
)

// TokenResponse is the IdP's answer to a successful token exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	InstanceURL string `json:"instance_url"`
	ID          string `json:"id"`
	TokenType   string `json:"token_type"`
}

// Client talks to Salesforce. The zero timeout of a bare http.Client is not
// acceptable for a Lambda, so New sets one.
type Client struct {
	httpClient *http.Client
}

// New creates a Salesforce client with a default HTTP timeout.
func New() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient creates a Salesforce client around an existing HTTP
// client, mainly for tests.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// BuildAssertion constructs and signs the RS256 JWT assertion for the
// JWT-bearer grant: issuer is the connected app's consumer key, subject the
// integration username, audience the login URL, expiry now+180s.
func BuildAssertion(creds models.Credentials, now time.Time) (string, error) {
	// Secret stores commonly hold the PEM with literal \n escapes; restore
	// real newlines before parsing.
	pemKey := strings.ReplaceAll(creds.PrivateKey, `\n`, "\n")

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pemKey))
	if err != nil {
		return "", fmt.Errorf("%w: invalid private key: %v", models.ErrAuth, err)
	}

	claims := jwt.RegisteredClaims{
		Issuer:    creds.ConsumerKey,
		Subject:   creds.Username,
		Audience:  jwt.ClaimStrings{creds.LoginURL},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(assertionLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("%w: failed to sign assertion: %v", models.ErrAuth, err)
	}

	return signed, nil
}

// ExchangeToken signs an assertion and exchanges it for a bearer token at
// {loginUrl}/services/oauth2/token. No retry; failures are fatal to the
// invocation.
func (c *Client) ExchangeToken(ctx context.Context, creds models.Credentials) (*TokenResponse, error) {
	logger := utils.GetLogger()

	assertion, err := BuildAssertion(creds, time.Now())
	if err != nil {
		logger.Error("Failed to build JWT assertion", zap.Error(err))
		return nil, err
	}

	form := url.Values{}
	form.Set("grant_type", grantType)
	form.Set("assertion", assertion)

	endpoint := strings.TrimSuffix(creds.LoginURL, "/") + tokenPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create token request: %v", models.ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Token exchange request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", models.ErrAuth, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read token response: %v", models.ErrAuth, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("Token exchange rejected",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, fmt.Errorf("%w: status %d", models.ErrAuth, resp.StatusCode)
	}

	var token TokenResponse
	if err := unmarshalJSON(body, &token); err != nil {
		return nil, fmt.Errorf("%w: malformed token response: %v", models.ErrAuth, err)
	}

	// The instance URL routes every subsequent API call. A token response
	// without one must fail here rather than default to some sandbox host.
	if token.InstanceURL == "" {
		logger.Error("Token response missing instance_url")
		return nil, fmt.Errorf("%w: token response missing instance_url", models.ErrAuth)
	}

	logger.Info("Token exchange succeeded", zap.String("instanceUrl", token.InstanceURL))

	return &token, nil
}
