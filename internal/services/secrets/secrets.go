// Package secrets retrieves Salesforce credentials from AWS Secrets Manager.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	appConfig "client-intake-sync/internal/config"
	"client-intake-sync/internal/models"
	"client-intake-sync/internal/utils"
)

// API is the slice of the Secrets Manager client the service uses. The
// client is injected so tests can fake it.
type API interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Service fetches the two Salesforce secrets. Secrets are fetched fresh
// every invocation; there is no cache.
type Service struct {
	client          API
	credentialsName string
	privateKeyName  string
}

// NewService creates a secrets service with an injected client.
func NewService(client API, credentialsName, privateKeyName string) *Service {
	return &Service{
		client:          client,
		credentialsName: credentialsName,
		privateKeyName:  privateKeyName,
	}
}

// NewFromConfig creates a secrets service backed by the default AWS config.
func NewFromConfig(ctx context.Context, appCfg *appConfig.Config) (*Service, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := secretsmanager.NewFromConfig(cfg)

	return NewService(client, appCfg.CredentialsSecretName, appCfg.PrivateKeySecretName), nil
}

// FetchCredentials retrieves both secrets and assembles the full credential
// set: the JSON credentials blob plus the raw PEM private key.
func (s *Service) FetchCredentials(ctx context.Context) (models.Credentials, error) {
	var creds models.Credentials

	blob, err := s.fetchString(ctx, s.credentialsName)
	if err != nil {
		return creds, err
	}

	if err := json.Unmarshal([]byte(blob), &creds); err != nil {
		utils.GetLogger().Error("Failed to decode credentials secret",
			zap.String("secret", s.credentialsName),
			zap.Error(err),
		)
		return creds, fmt.Errorf("%w: %s is not valid JSON", models.ErrSecretRetrieval, s.credentialsName)
	}

	key, err := s.fetchString(ctx, s.privateKeyName)
	if err != nil {
		return creds, err
	}
	creds.PrivateKey = key

	utils.GetLogger().Info("Fetched Salesforce credentials",
		zap.String("credentialsSecret", s.credentialsName),
		zap.String("privateKeySecret", s.privateKeyName),
	)

	return creds, nil
}

// fetchString retrieves a single secret's string value.
func (s *Service) fetchString(ctx context.Context, name string) (string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	}

	result, err := s.client.GetSecretValue(ctx, input)
	if err != nil {
		utils.GetLogger().Error("Failed to retrieve secret",
			zap.String("secret", name),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %s: %v", models.ErrSecretRetrieval, name, err)
	}

	if result.SecretString == nil || *result.SecretString == "" {
		utils.GetLogger().Error("Secret is empty", zap.String("secret", name))
		return "", fmt.Errorf("%w: %s", models.ErrSecretRetrieval, name)
	}

	return *result.SecretString, nil
}
