// Package notify sends staff notification emails via AWS SES.
package notify

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"

	appConfig "client-intake-sync/internal/config"
	"client-intake-sync/internal/models"
	"client-intake-sync/internal/utils"
)

// API is the slice of the SES client the service uses.
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Service sends plain-text lead notifications. Like archival, this is
// best-effort and never fails the invocation.
type Service struct {
	client    API
	fromEmail string
	toEmail   string
}

// NewService creates a notify service with an injected client.
func NewService(client API, fromEmail, toEmail string) *Service {
	return &Service{client: client, fromEmail: fromEmail, toEmail: toEmail}
}

// NewFromConfig creates a notify service backed by the default AWS config.
func NewFromConfig(ctx context.Context, appCfg *appConfig.Config) (*Service, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewService(ses.NewFromConfig(cfg), appCfg.NotifySenderEmail, appCfg.NotifyRecipientEmail), nil
}

// SendLeadCreated emails staff a short summary of the lead just created.
func (s *Service) SendLeadCreated(ctx context.Context, client models.ClientData, leadID string) error {
	subject := fmt.Sprintf("New intake lead: %s %s", client.Personal.FirstName, client.Personal.LastName)
	body := renderLeadCreatedText(client, leadID)

	input := &ses.SendEmailInput{
		Source: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{s.toEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(body),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		utils.GetLogger().Error("Failed to send lead notification",
			zap.String("to", s.toEmail),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send lead notification: %w", err)
	}

	utils.GetLogger().Info("Lead notification sent",
		zap.String("to", s.toEmail),
		zap.String("messageId", aws.ToString(result.MessageId)),
	)

	return nil
}

func renderLeadCreatedText(client models.ClientData, leadID string) string {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("A new lead was created in Salesforce (id %s).\n\n", leadID))
	buf.WriteString(fmt.Sprintf("Name: %s %s\n", client.Personal.FirstName, client.Personal.LastName))
	buf.WriteString(fmt.Sprintf("Email: %s\n", client.Contact.Email))
	buf.WriteString(fmt.Sprintf("Phone: %s\n", client.Contact.Phone))
	buf.WriteString(fmt.Sprintf("Address: %s, %s, %s %s\n",
		client.Address.StreetAddress, client.Address.City, client.Address.StateCode, client.Address.Zipcode))
	buf.WriteString(fmt.Sprintf("Primary language: %s\n", client.Contact.PrimaryLanguage))
	buf.WriteString(fmt.Sprintf("Household size: %s\n", client.Household.Size))
	buf.WriteString(fmt.Sprintf("Estimated monthly income: %s\n", client.Household.MonthlyIncome))

	return buf.String()
}
