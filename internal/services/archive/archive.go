// Package archive stores raw inbound submission payloads in S3 for audit.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	appConfig "client-intake-sync/internal/config"
	"client-intake-sync/internal/utils"
)

// API is the slice of the S3 client the service uses.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Service archives submission payloads. Archival is best-effort: callers
// log failures and continue, the pipeline outcome never depends on it.
type Service struct {
	client     API
	bucketName string
}

// NewService creates an archive service with an injected client.
func NewService(client API, bucketName string) *Service {
	return &Service{client: client, bucketName: bucketName}
}

// NewFromConfig creates an archive service backed by the default AWS config.
func NewFromConfig(ctx context.Context, appCfg *appConfig.Config) (*Service, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewService(s3.NewFromConfig(cfg), appCfg.ArchiveBucket), nil
}

// StoreSubmission writes the raw payload under submissions/<date>/<id>.json.
func (s *Service) StoreSubmission(ctx context.Context, submissionID string, payload []byte) error {
	key := fmt.Sprintf("submissions/%s/%s.json", time.Now().UTC().Format("2006-01-02"), submissionID)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		utils.GetLogger().Error("Failed to archive submission",
			zap.String("bucket", s.bucketName),
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("failed to archive submission: %w", err)
	}

	utils.GetLogger().Info("Archived submission",
		zap.String("bucket", s.bucketName),
		zap.String("key", key),
		zap.Int("size", len(payload)),
	)

	return nil
}
