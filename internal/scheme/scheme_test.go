package scheme

import (
	"testing"
	"time"
)

func TestDefaultMembership(t *testing.T) {
	m := Default()

	tests := []struct {
		name    string
		code    string
		sepa    bool
		euEEA   bool
		instant bool
	}{
		{name: "Germany", code: "DE", sepa: true, euEEA: true, instant: true},
		{name: "Sweden has no instant coverage", code: "SE", sepa: true, euEEA: true, instant: false},
		{name: "UK is SEPA but not EU/EEA", code: "GB", sepa: true, euEEA: false, instant: false},
		{name: "Home market", code: "ME", sepa: true, euEEA: false, instant: false},
		{name: "Non-member", code: "US", sepa: false, euEEA: false, instant: false},
		{name: "Empty code", code: "", sepa: false, euEEA: false, instant: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsSEPAActive(tt.code); got != tt.sepa {
				t.Errorf("IsSEPAActive(%q) = %v, expected %v", tt.code, got, tt.sepa)
			}
			if got := m.InEUEEA(tt.code); got != tt.euEEA {
				t.Errorf("InEUEEA(%q) = %v, expected %v", tt.code, got, tt.euEEA)
			}
			if got := m.HasInstantCoverage(tt.code); got != tt.instant {
				t.Errorf("HasInstantCoverage(%q) = %v, expected %v", tt.code, got, tt.instant)
			}
		})
	}
}

func TestHomeCountryAlwaysActive(t *testing.T) {
	// Home market is active even when excluded from the override list.
	m := New(Options{
		SEPACountries: []string{"DE", "FR"},
		HomeCountry:   "ME",
	})
	if !m.IsSEPAActive("ME") {
		t.Errorf("IsSEPAActive(ME) = false, expected true for home market")
	}
	if m.IsSEPAActive("IT") {
		t.Errorf("IsSEPAActive(IT) = true, expected false with override list")
	}
}

func TestGoLiveDateDefault(t *testing.T) {
	m := Default()
	want := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	if !m.GoLiveDate().Equal(want) {
		t.Errorf("GoLiveDate() = %v, expected %v", m.GoLiveDate(), want)
	}
}
