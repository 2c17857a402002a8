package models

// ClientData is the normalized applicant record assembled from one form
// submission. It lives only for the duration of the invocation.
type ClientData struct {
	Personal  PersonalInfo  `json:"personal"`
	Contact   ContactInfo   `json:"contact"`
	Address   AddressInfo   `json:"address"`
	Household HouseholdInfo `json:"household"`
}

// PersonalInfo holds the applicant's name.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ContactInfo holds how to reach the applicant.
type ContactInfo struct {
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PrimaryLanguage string `json:"primaryLanguage"`
}

// AddressInfo holds the applicant's mailing address. StateCode is the
// normalized 2-letter code derived from the free-text State.
type AddressInfo struct {
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	StateCode     string `json:"stateCode"`
	Zipcode       string `json:"zipcode"`
}

// HouseholdInfo holds household size and income as reported on the form.
type HouseholdInfo struct {
	Size          string `json:"size"`
	MonthlyIncome string `json:"monthlyIncome"`
}

// LeadRecord is the Salesforce Lead sObject payload. Field names follow the
// org's Lead schema, including the custom __c columns.
type LeadRecord struct {
	FirstName              string `json:"FirstName"`
	LastName               string `json:"LastName"`
	Street                 string `json:"Street"`
	City                   string `json:"City"`
	PostalCode             string `json:"PostalCode"`
	CountryCode            string `json:"CountryCode"`
	StateCode              string `json:"StateCode"`
	Phone                  string `json:"Phone"`
	Email                  string `json:"Email"`
	PrimaryLanguage        string `json:"Primary_Language__c"`
	HouseholdSize          string `json:"Household_Size__c"`
	MonthlyHouseholdIncome string `json:"Estimated_Monthly_Household_Income__c"`
	Company                string `json:"Company"`
	Status                 string `json:"Status"`
}

// NewLeadRecord maps a ClientData record onto the Lead schema with the
// fixed Company/Status/CountryCode values every intake lead carries.
func NewLeadRecord(client ClientData) LeadRecord {
	return LeadRecord{
		FirstName:              client.Personal.FirstName,
		LastName:               client.Personal.LastName,
		Street:                 client.Address.StreetAddress,
		City:                   client.Address.City,
		PostalCode:             client.Address.Zipcode,
		CountryCode:            "US",
		StateCode:              client.Address.StateCode,
		Phone:                  client.Contact.Phone,
		Email:                  client.Contact.Email,
		PrimaryLanguage:        client.Contact.PrimaryLanguage,
		HouseholdSize:          client.Household.Size,
		MonthlyHouseholdIncome: client.Household.MonthlyIncome,
		Company:                "Self",
		Status:                 "Open - Not Contacted",
	}
}
