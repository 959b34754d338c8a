// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/railcompare/rail-compare/internal/comparison"
	"github.com/railcompare/rail-compare/internal/fees"
	"github.com/railcompare/rail-compare/internal/scheme"
	"github.com/railcompare/rail-compare/internal/simulation"
	"github.com/railcompare/rail-compare/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for rail-compare.
type Configuration struct {
	Scenario   ScenarioConfig   `yaml:"scenario,omitempty"`
	Scheme     SchemeConfig     `yaml:"scheme,omitempty"`
	Simulation SimulationConfig `yaml:"simulation,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// ScenarioConfig holds the default transfer parameters evaluated by the CLI.
type ScenarioConfig struct {
	Amount       string `yaml:"amount,omitempty"` // raw text, normalized on use
	Country      string `yaml:"country,omitempty"`
	PayeeIBAN    string `yaml:"payeeIban,omitempty"`
	Channel      string `yaml:"channel,omitempty"` // electronic, counter
	FirstOfDay   bool   `yaml:"firstOfDay,omitempty"`
	UseInstant   bool   `yaml:"useInstant,omitempty"`
	Subscription bool   `yaml:"subscription,omitempty"`
	SWIFTProfile string `yaml:"swiftProfile,omitempty"`
	SWIFTOption  string `yaml:"swiftOption,omitempty"`
}

// SchemeConfig overrides the built-in membership data.
type SchemeConfig struct {
	HomeCountry     string            `yaml:"homeCountry,omitempty"`
	GoLiveDate      string            `yaml:"goLiveDate,omitempty"`
	SEPACountries   []string          `yaml:"sepaCountries,omitempty"`
	EUEEACountries  []string          `yaml:"euEeaCountries,omitempty"`
	InstantCoverage []string          `yaml:"instantCoverage,omitempty"`
	CountryNames    map[string]string `yaml:"countryNames,omitempty"`
}

// SimulationConfig holds the demo durations and starting balance.
type SimulationConfig struct {
	InstantDuration  time.Duration `yaml:"instantDuration,omitempty"`
	StandardDuration time.Duration `yaml:"standardDuration,omitempty"`
	SWIFTDuration    time.Duration `yaml:"swiftDuration,omitempty"`
	TickInterval     time.Duration `yaml:"tickInterval,omitempty"`
	StartingBalance  float64       `yaml:"startingBalance,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error; the defaults describe
// a complete scenario on their own.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scenario.amount", "250")
	v.SetDefault("scenario.country", "Germany")
	v.SetDefault("scenario.channel", string(fees.ChannelElectronic))
	v.SetDefault("scenario.firstofday", true)
	v.SetDefault("scenario.useinstant", true)
	v.SetDefault("scenario.swiftprofile", string(fees.ProfileGeneric))
	v.SetDefault("scenario.swiftoption", string(fees.OptionSHA))
	v.SetDefault("scheme.homecountry", constants.DefaultHomeCountry)
	v.SetDefault("scheme.golivedate", constants.DefaultGoLiveDate)
	v.SetDefault("simulation.instantduration", constants.SEPAInstantDuration)
	v.SetDefault("simulation.standardduration", constants.SEPAStandardDuration)
	v.SetDefault("simulation.swiftduration", constants.SWIFTDuration)
	v.SetDefault("simulation.tickinterval", constants.ProgressTickInterval)
	v.SetDefault("simulation.startingbalance", constants.DefaultStartingBalance)
	v.SetDefault("output.format", constants.OutputFormatPretty)
}

// ParseAmount normalizes raw amount text to a non-negative value: whitespace
// trimmed, comma decimal separators accepted, leading zeros stripped.
// Anything unparsable normalizes to zero rather than erroring.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SchemeOptions converts the scheme section into membership options.
func (c *Configuration) SchemeOptions() scheme.Options {
	opts := scheme.Options{
		SEPACountries:   c.Scheme.SEPACountries,
		EUEEACountries:  c.Scheme.EUEEACountries,
		InstantCoverage: c.Scheme.InstantCoverage,
		HomeCountry:     c.Scheme.HomeCountry,
	}
	if c.Scheme.GoLiveDate != "" {
		if goLive, err := time.Parse(constants.GoLiveDateLayout, c.Scheme.GoLiveDate); err == nil {
			opts.GoLiveDate = goLive
		}
	}
	return opts
}

// Durations converts the simulation section into comparison durations.
func (c *Configuration) Durations() comparison.Durations {
	d := comparison.DefaultDurations()
	if c.Simulation.InstantDuration > 0 {
		d.SEPAInstant = c.Simulation.InstantDuration
	}
	if c.Simulation.StandardDuration > 0 {
		d.SEPAStandard = c.Simulation.StandardDuration
	}
	if c.Simulation.SWIFTDuration > 0 {
		d.SWIFT = c.Simulation.SWIFTDuration
	}
	return d
}

// RunnerConfig converts the simulation section into runner settings.
func (c *Configuration) RunnerConfig() simulation.Config {
	return simulation.Config{
		SEPADuration:    c.Simulation.StandardDuration,
		SWIFTDuration:   c.Simulation.SWIFTDuration,
		TickInterval:    c.Simulation.TickInterval,
		StartingBalance: c.Simulation.StartingBalance,
	}
}

// ComparisonInput converts the scenario section into a comparison input.
func (c *Configuration) ComparisonInput() comparison.Input {
	return comparison.Input{
		Amount:       ParseAmount(c.Scenario.Amount),
		CountryName:  c.Scenario.Country,
		PayeeIBAN:    c.Scenario.PayeeIBAN,
		Channel:      fees.Channel(c.Scenario.Channel),
		FirstOfDay:   c.Scenario.FirstOfDay,
		WantsInstant: c.Scenario.UseInstant,
		Recurring:    c.Scenario.Subscription,
		SWIFTProfile: fees.BankProfile(c.Scenario.SWIFTProfile),
		SWIFTOption:  fees.CostOption(c.Scenario.SWIFTOption),
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	switch c.Scenario.Channel {
	case string(fees.ChannelElectronic), string(fees.ChannelCounter):
	default:
		warnings = append(warnings, fmt.Sprintf("unknown channel %q, expected electronic or counter", c.Scenario.Channel))
	}

	validProfile := false
	for _, p := range fees.Profiles() {
		if c.Scenario.SWIFTProfile == string(p) {
			validProfile = true
		}
	}
	if !validProfile {
		warnings = append(warnings, fmt.Sprintf("unknown SWIFT profile %q, falling back to %s", c.Scenario.SWIFTProfile, fees.ProfileGeneric))
	}

	validOption := false
	for _, o := range fees.Options() {
		if c.Scenario.SWIFTOption == string(o) {
			validOption = true
		}
	}
	if !validOption {
		warnings = append(warnings, fmt.Sprintf("unknown SWIFT cost option %q, expected BEN, SHA, or OUR", c.Scenario.SWIFTOption))
	}

	if raw := strings.TrimSpace(c.Scenario.Amount); raw != "" && ParseAmount(raw) == 0 {
		warnings = append(warnings, fmt.Sprintf("amount %q does not parse as a positive number and normalizes to zero", c.Scenario.Amount))
	}

	if c.Scheme.GoLiveDate != "" {
		if _, err := time.Parse(constants.GoLiveDateLayout, c.Scheme.GoLiveDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("goLiveDate %q does not match layout %s", c.Scheme.GoLiveDate, constants.GoLiveDateLayout))
		}
	}

	if c.Simulation.StartingBalance < 0 {
		warnings = append(warnings, "startingBalance is negative; every send will be refused")
	}
	if c.Simulation.TickInterval < 0 {
		warnings = append(warnings, "tickInterval is negative; the default tick interval applies")
	}

	switch c.Output.Format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, "":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown output format %q, expected pretty or csv", c.Output.Format))
	}

	return warnings
}
