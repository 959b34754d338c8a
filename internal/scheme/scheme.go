// Package scheme holds the static membership data for the regional payment
// scheme: which countries participate in SEPA, which belong to the EU/EEA
// (governing direct-debit availability), and which have dependable SCT Inst
// coverage. The sets are configuration data, initialized once and immutable
// afterwards.
package scheme

import (
	"time"

	"github.com/railcompare/rail-compare/pkg/constants"
)

// defaultSEPACountries is the indicative SEPA participation list: EU + EEA
// plus the remaining scheme countries and the home market.
var defaultSEPACountries = []string{
	"AT", "BE", "BG", "HR", "CY", "CZ", "DK", "EE", "FI", "FR", "DE", "GR",
	"HU", "IE", "IT", "LV", "LT", "LU", "MT", "NL", "PL", "PT", "RO", "SK",
	"SI", "ES", "SE",
	"IS", "LI", "NO",
	"GB", "CH", "AD", "MC", "SM", "VA", "ME",
}

// defaultEUEEACountries governs direct-debit (SDD) availability.
var defaultEUEEACountries = []string{
	"AT", "BE", "BG", "HR", "CY", "CZ", "DK", "EE", "FI", "FR", "DE", "GR",
	"HU", "IE", "IT", "LV", "LT", "LU", "MT", "NL", "PL", "PT", "RO", "SK",
	"SI", "ES", "SE",
	"IS", "LI", "NO",
}

// defaultInstantCoverage lists countries with dependable SCT Inst reach.
var defaultInstantCoverage = []string{
	"DE", "NL", "ES", "PT", "FR", "IT", "SI", "HR", "AT", "EE", "LT", "LV",
	"BE", "FI", "SK", "IE",
}

// Membership is the immutable set of scheme participation data consulted by
// the decision engine.
type Membership struct {
	sepa    map[string]struct{}
	euEEA   map[string]struct{}
	instant map[string]struct{}
	home    string
	goLive  time.Time
}

// Options overrides the built-in membership data. Zero-value fields fall back
// to the defaults.
type Options struct {
	SEPACountries   []string
	EUEEACountries  []string
	InstantCoverage []string
	HomeCountry     string
	GoLiveDate      time.Time
}

// New builds a Membership from the given options.
func New(opts Options) *Membership {
	m := &Membership{
		sepa:    toSet(opts.SEPACountries, defaultSEPACountries),
		euEEA:   toSet(opts.EUEEACountries, defaultEUEEACountries),
		instant: toSet(opts.InstantCoverage, defaultInstantCoverage),
		home:    opts.HomeCountry,
		goLive:  opts.GoLiveDate,
	}
	if m.home == "" {
		m.home = constants.DefaultHomeCountry
	}
	if m.goLive.IsZero() {
		m.goLive, _ = time.Parse(constants.GoLiveDateLayout, constants.DefaultGoLiveDate)
	}
	return m
}

// Default returns a Membership with the built-in data.
func Default() *Membership {
	return New(Options{})
}

func toSet(override, fallback []string) map[string]struct{} {
	codes := override
	if len(codes) == 0 {
		codes = fallback
	}
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

// IsSEPAActive reports whether the scheme is usable toward the given country.
// The home market is treated as active regardless of the static set,
// representing the local phased rollout.
func (m *Membership) IsSEPAActive(code string) bool {
	if code == "" {
		return false
	}
	if code == m.home {
		return true
	}
	_, ok := m.sepa[code]
	return ok
}

// InEUEEA reports whether the country belongs to the broader economic area.
func (m *Membership) InEUEEA(code string) bool {
	_, ok := m.euEEA[code]
	return ok
}

// HasInstantCoverage reports whether SCT Inst reach is assumed dependable.
func (m *Membership) HasInstantCoverage(code string) bool {
	_, ok := m.instant[code]
	return ok
}

// HomeCountry returns the payer's home market code.
func (m *Membership) HomeCountry() string {
	return m.home
}

// GoLiveDate returns the home market's credit-transfer go-live date. It is
// informational only; eligibility never consults the clock.
func (m *Membership) GoLiveDate() time.Time {
	return m.goLive
}
