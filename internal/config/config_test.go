package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/railcompare/rail-compare/internal/fees"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Scenario.Amount != "250" {
		t.Errorf("Scenario.Amount = %q, expected 250", conf.Scenario.Amount)
	}
	if conf.Scenario.Country != "Germany" {
		t.Errorf("Scenario.Country = %q, expected Germany", conf.Scenario.Country)
	}
	if !conf.Scenario.FirstOfDay || !conf.Scenario.UseInstant {
		t.Errorf("FirstOfDay/UseInstant defaults = %v/%v, expected true/true",
			conf.Scenario.FirstOfDay, conf.Scenario.UseInstant)
	}
	if conf.Simulation.SWIFTDuration != 40*time.Second {
		t.Errorf("Simulation.SWIFTDuration = %v, expected 40s", conf.Simulation.SWIFTDuration)
	}
	if conf.Simulation.StartingBalance != 2000 {
		t.Errorf("Simulation.StartingBalance = %v, expected 2000", conf.Simulation.StartingBalance)
	}
	if conf.Scheme.HomeCountry != "ME" {
		t.Errorf("Scheme.HomeCountry = %q, expected ME", conf.Scheme.HomeCountry)
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, `
scenario:
  amount: "1.500,50"
  country: Italy
  channel: counter
  subscription: true
  swiftProfile: Percentage
  swiftOption: OUR
simulation:
  swiftDuration: 10s
  startingBalance: 5000
scheme:
  homeCountry: RS
`))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Scenario.Country != "Italy" {
		t.Errorf("Scenario.Country = %q, expected Italy", conf.Scenario.Country)
	}
	if conf.Scenario.Channel != "counter" {
		t.Errorf("Scenario.Channel = %q, expected counter", conf.Scenario.Channel)
	}
	if !conf.Scenario.Subscription {
		t.Errorf("Scenario.Subscription = false, expected true")
	}
	if conf.Simulation.SWIFTDuration != 10*time.Second {
		t.Errorf("Simulation.SWIFTDuration = %v, expected 10s", conf.Simulation.SWIFTDuration)
	}
	if conf.Scheme.HomeCountry != "RS" {
		t.Errorf("Scheme.HomeCountry = %q, expected RS", conf.Scheme.HomeCountry)
	}

	in := conf.ComparisonInput()
	if in.SWIFTProfile != fees.ProfilePercentage || in.SWIFTOption != fees.OptionOUR {
		t.Errorf("ComparisonInput profile/option = %v/%v, expected Percentage/OUR",
			in.SWIFTProfile, in.SWIFTOption)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "Plain number", raw: "250", expected: 250},
		{name: "Comma decimal separator", raw: "99,95", expected: 99.95},
		{name: "Whitespace", raw: "  42  ", expected: 42},
		{name: "Empty", raw: "", expected: 0},
		{name: "Garbage", raw: "abc", expected: 0},
		{name: "Negative normalizes to zero", raw: "-5", expected: 0},
		{name: "Leading zeros", raw: "0250", expected: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.raw); got != tt.expected {
				t.Errorf("ParseAmount(%q) = %v, expected %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, `
scenario:
  amount: "not-a-number"
  channel: carrier-pigeon
  swiftProfile: Mystery
  swiftOption: ALL
scheme:
  goLiveDate: someday
output:
  format: xml
`))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 6 {
		t.Errorf("got %d warnings, expected 6: %v", len(warnings), warnings)
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("defaults produced warnings: %v", warnings)
	}
}

func TestSchemeOptionsGoLive(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	opts := conf.SchemeOptions()
	want := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	if !opts.GoLiveDate.Equal(want) {
		t.Errorf("GoLiveDate = %v, expected %v", opts.GoLiveDate, want)
	}
}
