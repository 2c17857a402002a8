package intake

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-intake-sync/internal/models"
)

// fullSubmission returns a well-formed submission with all required questions.
func fullSubmission(t *testing.T) models.Submission {
	t.Helper()

	var event models.IntakeEvent
	require.NoError(t, json.Unmarshal([]byte(`{"submission":{"questions":[
		{"name":"First Name","value":"Jane"},
		{"name":"Last Name","value":"Doe"},
		{"name":"Email","value":"jane@example.com"},
		{"name":"Phone","value":"512-555-0100"},
		{"name":"Your address","value":{"address":"1 Main St","city":"Austin","state":"Texas","zipcode":"78701"}},
		{"name":"Primary Language","value":"Spanish"},
		{"name":"Number of family members in your household","value":"4"},
		{"name":"Estimated Monthly Household Income","value":"2500"}
	]}}`), &event))

	return event.Submission
}

func TestExtractClientData(t *testing.T) {
	client, err := ExtractClientData(fullSubmission(t))
	require.NoError(t, err)

	assert.Equal(t, "Jane", client.Personal.FirstName)
	assert.Equal(t, "Doe", client.Personal.LastName)
	assert.Equal(t, "jane@example.com", client.Contact.Email)
	assert.Equal(t, "512-555-0100", client.Contact.Phone)
	assert.Equal(t, "Spanish", client.Contact.PrimaryLanguage)
	assert.Equal(t, "1 Main St", client.Address.StreetAddress)
	assert.Equal(t, "Austin", client.Address.City)
	assert.Equal(t, "Texas", client.Address.State)
	assert.Equal(t, "TX", client.Address.StateCode)
	assert.Equal(t, "78701", client.Address.Zipcode)
	assert.Equal(t, "4", client.Household.Size)
	assert.Equal(t, "2500", client.Household.MonthlyIncome)
}

func TestExtractClientData_MissingPhone(t *testing.T) {
	sub := fullSubmission(t)

	filtered := sub.Questions[:0]
	for _, q := range sub.Questions {
		if q.Name != models.QuestionPhone {
			filtered = append(filtered, q)
		}
	}
	sub.Questions = filtered

	_, err := ExtractClientData(sub)
	assert.ErrorIs(t, err, models.ErrMissingField)
	assert.Contains(t, err.Error(), "Phone")
}

func TestExtractClientData_UnknownState(t *testing.T) {
	sub := fullSubmission(t)
	for i, q := range sub.Questions {
		if q.Name == models.QuestionAddress {
			sub.Questions[i].Value = map[string]interface{}{
				"address": "1 Main St",
				"city":    "Austin",
				"state":   "texas", // wrong case, table is strict
				"zipcode": "78701",
			}
		}
	}

	_, err := ExtractClientData(sub)
	assert.ErrorIs(t, err, models.ErrUnknownState)
}

func TestExtractClientData_EmptySubmission(t *testing.T) {
	_, err := ExtractClientData(models.Submission{})
	assert.ErrorIs(t, err, models.ErrMissingField)
}
