package models

// Credentials are the Salesforce connected-app credentials fetched from the
// secret store once per invocation. PrivateKey is stored as a separate raw
// secret and filled in after the JSON blob is decoded.
type Credentials struct {
	ConsumerKey string `json:"consumerKey"`
	Username    string `json:"username"`
	LoginURL    string `json:"loginUrl"`
	PrivateKey  string `json:"-"`
}
