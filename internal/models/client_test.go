package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeadRecord(t *testing.T) {
	client := ClientData{
		Personal: PersonalInfo{FirstName: "Jane", LastName: "Doe"},
		Contact: ContactInfo{
			Email:           "jane@example.com",
			Phone:           "512-555-0100",
			PrimaryLanguage: "Spanish",
		},
		Address: AddressInfo{
			StreetAddress: "1 Main St",
			City:          "Austin",
			State:         "Texas",
			StateCode:     "TX",
			Zipcode:       "78701",
		},
		Household: HouseholdInfo{Size: "4", MonthlyIncome: "2500"},
	}

	lead := NewLeadRecord(client)

	assert.Equal(t, "Jane", lead.FirstName)
	assert.Equal(t, "Doe", lead.LastName)
	assert.Equal(t, "1 Main St", lead.Street)
	assert.Equal(t, "Austin", lead.City)
	assert.Equal(t, "78701", lead.PostalCode)
	assert.Equal(t, "TX", lead.StateCode)
	assert.Equal(t, "US", lead.CountryCode)
	assert.Equal(t, "Self", lead.Company)
	assert.Equal(t, "Open - Not Contacted", lead.Status)
}

func TestLeadRecord_JSONFieldNames(t *testing.T) {
	lead := NewLeadRecord(ClientData{
		Contact:   ContactInfo{PrimaryLanguage: "Spanish"},
		Household: HouseholdInfo{Size: "4", MonthlyIncome: "2500"},
	})

	raw, err := json.Marshal(lead)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	// The custom columns must serialize under their Salesforce API names.
	assert.Equal(t, "Spanish", fields["Primary_Language__c"])
	assert.Equal(t, "4", fields["Household_Size__c"])
	assert.Equal(t, "2500", fields["Estimated_Monthly_Household_Income__c"])
	assert.Contains(t, fields, "FirstName")
	assert.Contains(t, fields, "PostalCode")
}
