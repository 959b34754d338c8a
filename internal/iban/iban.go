// Package iban resolves a destination country code from either a raw IBAN
// string or a selected country name. A failed resolution is absence of
// information, not an error; callers fall back or report a missing
// destination.
package iban

import (
	"regexp"
	"strings"
)

// ibanPattern matches a normalized IBAN: two letters, two check digits, then
// an alphanumeric body. Validation of check digits is deliberately out of
// scope; only the country prefix is of interest here.
var ibanPattern = regexp.MustCompile(`^([A-Z]{2})[0-9]{2}[A-Z0-9]+$`)

// defaultCountryNames maps the selectable destination names to ISO codes.
var defaultCountryNames = map[string]string{
	"Germany":     "DE",
	"Italy":       "IT",
	"France":      "FR",
	"Spain":       "ES",
	"Croatia":     "HR",
	"Slovenia":    "SI",
	"Austria":     "AT",
	"Netherlands": "NL",
	"Sweden":      "SE",
	"Ireland":     "IE",
}

// Resolver resolves destination country codes. The zero value is not usable;
// construct with NewResolver.
type Resolver struct {
	names map[string]string
}

// NewResolver returns a Resolver using the given name→code table, or the
// built-in table when names is nil.
func NewResolver(names map[string]string) *Resolver {
	if names == nil {
		names = defaultCountryNames
	}
	return &Resolver{names: names}
}

// FromIBAN extracts the country code from a raw IBAN. Interior whitespace is
// ignored and letters are uppercased before matching. Returns "" when the
// input does not look like an IBAN.
func FromIBAN(raw string) string {
	iban := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	m := ibanPattern.FindStringSubmatch(iban)
	if m == nil {
		return ""
	}
	return m[1]
}

// FromName looks the country name up in the fixed table. Unknown names
// return "".
func (r *Resolver) FromName(name string) string {
	return r.names[name]
}

// Resolve combines both sources, preferring the IBAN-derived code over the
// selected country name. Returns "" when neither resolves.
func (r *Resolver) Resolve(ibanRaw, countryName string) string {
	if code := FromIBAN(ibanRaw); code != "" {
		return code
	}
	return r.FromName(countryName)
}
