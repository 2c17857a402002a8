package models

import (
	"encoding/json"
	"fmt"
)

// IntakeEvent is the inbound webhook payload from the form builder.
type IntakeEvent struct {
	Submission Submission `json:"submission"`
}

// Submission holds the ordered question/answer list of one form submission.
type Submission struct {
	Questions []Question `json:"questions"`
}

// Question is a single named answer. Value is free-form: most questions
// carry a string, the address question carries a nested object.
type Question struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// AddressValue is the object value of the "Your address" question.
type AddressValue struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

// Required question names as the form builder labels them. Matching is an
// exact string comparison on purpose: a renamed form field should fail
// loudly, not map silently to the wrong Lead column.
const (
	QuestionFirstName       = "First Name"
	QuestionLastName        = "Last Name"
	QuestionEmail           = "Email"
	QuestionPhone           = "Phone"
	QuestionAddress         = "Your address"
	QuestionPrimaryLanguage = "Primary Language"
	QuestionHouseholdSize   = "Number of family members in your household"
	QuestionMonthlyIncome   = "Estimated Monthly Household Income"
)

// AnswerForQuestion returns the value of the first question whose name
// exactly matches. It returns ErrMissingField when no entry matches.
func (s Submission) AnswerForQuestion(name string) (interface{}, error) {
	for _, q := range s.Questions {
		if q.Name == name {
			return q.Value, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMissingField, name)
}

// StringAnswer returns the answer for name rendered as a string.
func (s Submission) StringAnswer(name string) (string, error) {
	value, err := s.AnswerForQuestion(name)
	if err != nil {
		return "", err
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// AddressAnswer returns the answer for name decoded into an AddressValue.
func (s Submission) AddressAnswer(name string) (AddressValue, error) {
	value, err := s.AnswerForQuestion(name)
	if err != nil {
		return AddressValue{}, err
	}

	// The answer arrives as a generic JSON object; round-trip it into the
	// typed struct.
	raw, err := json.Marshal(value)
	if err != nil {
		return AddressValue{}, fmt.Errorf("%w: %q has malformed value", ErrMissingField, name)
	}

	var addr AddressValue
	if err := json.Unmarshal(raw, &addr); err != nil {
		return AddressValue{}, fmt.Errorf("%w: %q has malformed value", ErrMissingField, name)
	}
	return addr, nil
}
