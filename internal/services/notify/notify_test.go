package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-intake-sync/internal/models"
)

type fakeSESAPI struct {
	err       error
	lastInput *ses.SendEmailInput
}

func (f *fakeSESAPI) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-001")}, nil
}

func testClient() models.ClientData {
	return models.ClientData{
		Personal: models.PersonalInfo{FirstName: "Jane", LastName: "Doe"},
		Contact: models.ContactInfo{
			Email:           "jane@example.com",
			Phone:           "512-555-0100",
			PrimaryLanguage: "Spanish",
		},
		Address: models.AddressInfo{
			StreetAddress: "1 Main St",
			City:          "Austin",
			StateCode:     "TX",
			Zipcode:       "78701",
		},
		Household: models.HouseholdInfo{Size: "4", MonthlyIncome: "2500"},
	}
}

func TestSendLeadCreated(t *testing.T) {
	api := &fakeSESAPI{}
	svc := NewService(api, "noreply@example.org", "intake@example.org")

	err := svc.SendLeadCreated(context.Background(), testClient(), "00Q5e00000ABCDE")
	require.NoError(t, err)

	require.NotNil(t, api.lastInput)
	assert.Equal(t, "noreply@example.org", aws.ToString(api.lastInput.Source))
	assert.Equal(t, []string{"intake@example.org"}, api.lastInput.Destination.ToAddresses)

	subject := aws.ToString(api.lastInput.Message.Subject.Data)
	assert.Contains(t, subject, "Jane Doe")

	body := aws.ToString(api.lastInput.Message.Body.Text.Data)
	assert.Contains(t, body, "00Q5e00000ABCDE")
	assert.Contains(t, body, "jane@example.com")
	assert.Contains(t, body, "Austin, TX 78701")
}

func TestSendLeadCreated_Failure(t *testing.T) {
	api := &fakeSESAPI{err: errors.New("MessageRejected")}
	svc := NewService(api, "noreply@example.org", "intake@example.org")

	err := svc.SendLeadCreated(context.Background(), testClient(), "00Q5e00000ABCDE")
	assert.Error(t, err)
}
