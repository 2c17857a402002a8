// Package intake maps raw form submissions into the normalized client schema.
package intake

import (
	"client-intake-sync/internal/models"
)

// ExtractClientData assembles a ClientData record from the submission's
// question list. Every required question must be present; the first error
// encountered is returned unchanged so the caller can classify it.
func ExtractClientData(sub models.Submission) (models.ClientData, error) {
	var client models.ClientData

	firstName, err := sub.StringAnswer(models.QuestionFirstName)
	if err != nil {
		return client, err
	}
	lastName, err := sub.StringAnswer(models.QuestionLastName)
	if err != nil {
		return client, err
	}
	email, err := sub.StringAnswer(models.QuestionEmail)
	if err != nil {
		return client, err
	}
	phone, err := sub.StringAnswer(models.QuestionPhone)
	if err != nil {
		return client, err
	}
	addr, err := sub.AddressAnswer(models.QuestionAddress)
	if err != nil {
		return client, err
	}
	language, err := sub.StringAnswer(models.QuestionPrimaryLanguage)
	if err != nil {
		return client, err
	}
	householdSize, err := sub.StringAnswer(models.QuestionHouseholdSize)
	if err != nil {
		return client, err
	}
	monthlyIncome, err := sub.StringAnswer(models.QuestionMonthlyIncome)
	if err != nil {
		return client, err
	}

	stateCode, err := models.GetStateCode(addr.State)
	if err != nil {
		return client, err
	}

	client = models.ClientData{
		Personal: models.PersonalInfo{
			FirstName: firstName,
			LastName:  lastName,
		},
		Contact: models.ContactInfo{
			Email:           email,
			Phone:           phone,
			PrimaryLanguage: language,
		},
		Address: models.AddressInfo{
			StreetAddress: addr.Address,
			City:          addr.City,
			State:         addr.State,
			StateCode:     stateCode,
			Zipcode:       addr.Zipcode,
		},
		Household: models.HouseholdInfo{
			Size:          householdSize,
			MonthlyIncome: monthlyIncome,
		},
	}

	return client, nil
}
