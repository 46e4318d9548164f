package countries

import (
	"fmt"
	"strings"
)

// Country is one entry of the calling code directory.
type Country struct {
	Code        string `json:"code" yaml:"code"`                 // Region code, e.g. "US"
	Name        string `json:"name" yaml:"name"`                 // Display name
	CallingCode string `json:"calling_code" yaml:"calling_code"` // "+" followed by the first upstream calling code
	FlagURL     string `json:"flag_url" yaml:"flag_url"`         // Flag image URL
}

// Record is the upstream JSON shape of a country. Only the fields the
// directory uses are decoded.
type Record struct {
	Alpha2Code   string   `json:"alpha2Code"`
	Name         string   `json:"name"`
	CallingCodes []string `json:"callingCodes"`
}

// FlagImageURL builds the flag image URL for a region code.
func FlagImageURL(base string, code string) string {
	return strings.TrimRight(base, "/") + "/" + code + "/flat/64.png"
}

// FromRecord converts an upstream record into a Country.
// A record without calling codes cannot be converted.
func FromRecord(r Record, flagBase string) (Country, error) {
	if len(r.CallingCodes) == 0 {
		return Country{}, fmt.Errorf("country %q has no calling codes", r.Alpha2Code)
	}
	return Country{
		Code:        r.Alpha2Code,
		Name:        r.Name,
		CallingCode: "+" + r.CallingCodes[0],
		FlagURL:     FlagImageURL(flagBase, r.Alpha2Code),
	}, nil
}

// Flag returns the emoji flag for a two-letter region code, or "" when the
// code is not two ASCII letters. Terminals show this where the mobile screen
// showed the flag image.
func (c Country) Flag() string {
	if len(c.Code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(c.Code) {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

// String formats the country as "Name (+code)".
func (c Country) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.CallingCode)
}

// IndexOf returns the index of the first country whose code equals code,
// or -1 if there is none.
func IndexOf(list []Country, code string) int {
	for i, c := range list {
		if c.Code == code {
			return i
		}
	}
	return -1
}
