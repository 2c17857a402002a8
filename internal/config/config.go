// Package config provides configuration management for the application.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
type Config struct {
	// AWS
	AWSRegion string

	// Secrets Manager identifiers
	CredentialsSecretName string
	PrivateKeySecretName  string

	// Optional submission archival
	ArchiveBucket string

	// Optional staff notification
	NotifySenderEmail    string
	NotifyRecipientEmail string

	// Application
	Stage    string
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		// AWS
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),

		// Secrets Manager
		CredentialsSecretName: getEnv("SALESFORCE_CREDENTIALS_SECRET", "salesforce/api-credentials"),
		PrivateKeySecretName:  getEnv("SALESFORCE_PRIVATE_KEY_SECRET", "salesforce/jwt-private-key"),

		// Archival
		ArchiveBucket: getEnv("SUBMISSION_ARCHIVE_BUCKET", ""),

		// Notification
		NotifySenderEmail:    getEnv("NOTIFY_SENDER_EMAIL", ""),
		NotifyRecipientEmail: getEnv("NOTIFY_RECIPIENT_EMAIL", ""),

		// Application
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// ArchiveEnabled reports whether submission archival is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.ArchiveBucket != ""
}

// NotifyEnabled reports whether staff notification emails are configured.
func (c *Config) NotifyEnabled() bool {
	return c.NotifySenderEmail != "" && c.NotifyRecipientEmail != ""
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
