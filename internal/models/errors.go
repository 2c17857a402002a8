// Package models defines the data structures for the client intake sync service.
package models

import "errors"

// Pipeline error taxonomy. Every stage wraps one of these sentinels with
// fmt.Errorf("%w: ...") so callers can classify failures with errors.Is.
var (
	ErrSecretRetrieval = errors.New("secret missing or empty")
	ErrAuth            = errors.New("token exchange failed")
	ErrMissingField    = errors.New("required question absent from submission")
	ErrUnknownState    = errors.New("unrecognized state name")
	ErrSubmission      = errors.New("lead creation failed")
)
