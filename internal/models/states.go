package models

import "fmt"

// stateCodes maps full US state names to their 2-letter codes, 51 entries
// covering the 50 states plus the District of Columbia. The table is closed:
// lookups are exact, with no trimming or case folding, so a misspelled or
// abbreviated state name on the form fails the invocation.
var stateCodes = map[string]string{
	"Alabama":              "AL",
	"Alaska":               "AK",
	"Arizona":              "AZ",
	"Arkansas":             "AR",
	"California":           "CA",
	"Colorado":             "CO",
	"Connecticut":          "CT",
	"Delaware":             "DE",
	"District of Columbia": "DC",
	"Florida":              "FL",
	"Georgia":              "GA",
	"Hawaii":               "HI",
	"Idaho":                "ID",
	"Illinois":             "IL",
	"Indiana":              "IN",
	"Iowa":                 "IA",
	"Kansas":               "KS",
	"Kentucky":             "KY",
	"Louisiana":            "LA",
	"Maine":                "ME",
	"Maryland":             "MD",
	"Massachusetts":        "MA",
	"Michigan":             "MI",
	"Minnesota":            "MN",
	"Mississippi":          "MS",
	"Missouri":             "MO",
	"Montana":              "MT",
	"Nebraska":             "NE",
	"Nevada":               "NV",
	"New Hampshire":        "NH",
	"New Jersey":           "NJ",
	"New Mexico":           "NM",
	"New York":             "NY",
	"North Carolina":       "NC",
	"North Dakota":         "ND",
	"Ohio":                 "OH",
	"Oklahoma":             "OK",
	"Oregon":               "OR",
	"Pennsylvania":         "PA",
	"Rhode Island":         "RI",
	"South Carolina":       "SC",
	"South Dakota":         "SD",
	"Tennessee":            "TN",
	"Texas":                "TX",
	"Utah":                 "UT",
	"Vermont":              "VT",
	"Virginia":             "VA",
	"Washington":           "WA",
	"West Virginia":        "WV",
	"Wisconsin":            "WI",
	"Wyoming":              "WY",
}

// GetStateCode returns the 2-letter code for a full state name, or
// ErrUnknownState when the name is not in the table.
func GetStateCode(name string) (string, error) {
	code, ok := stateCodes[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
	return code, nil
}

// StateNames returns every state name in the lookup table.
func StateNames() []string {
	names := make([]string, 0, len(stateCodes))
	for name := range stateCodes {
		names = append(names, name)
	}
	return names
}
