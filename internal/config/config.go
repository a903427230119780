// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/lbo-calculator/internal/calculator"
	"github.com/iwvelando/lbo-calculator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for lbo-calculator.
type Configuration struct {
	Deal    Deal          `yaml:"deal,omitempty"`
	Display DisplayConfig `yaml:"display,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// Deal holds the loan terms and valuation inputs for one scenario.
type Deal struct {
	Principal         float64 `yaml:"principal"`
	AnnualRatePercent float64 `yaml:"annualRatePercent"`
	TermYears         int     `yaml:"termYears"`
	CashflowOrEbitda  float64 `yaml:"cashflowOrEbitda"`
	SalePrice         float64 `yaml:"salePrice"`
}

// DisplayConfig holds schedule aggregation display options.
type DisplayConfig struct {
	Mode string `yaml:"mode,omitempty"` // totals, monthly-average
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

// DefaultConfiguration returns the configuration used when no file supplies
// overrides; the deal values match those the web form is seeded with.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Deal: Deal{
			Principal:         constants.DefaultPrincipal,
			AnnualRatePercent: constants.DefaultAnnualRatePercent,
			TermYears:         constants.DefaultTermYears,
			CashflowOrEbitda:  constants.DefaultCashflow,
			SalePrice:         constants.DefaultSalePrice,
		},
		Display: DisplayConfig{Mode: constants.DisplayModeTotals},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from an
// arbitrary reader.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")
	setDefaults(v)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data: %w", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &configuration, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deal.principal", constants.DefaultPrincipal)
	v.SetDefault("deal.annualratepercent", constants.DefaultAnnualRatePercent)
	v.SetDefault("deal.termyears", constants.DefaultTermYears)
	v.SetDefault("deal.cashfloworebitda", constants.DefaultCashflow)
	v.SetDefault("deal.saleprice", constants.DefaultSalePrice)
	v.SetDefault("display.mode", constants.DisplayModeTotals)
}

// Request converts the configured deal into a calculator request.
func (c *Configuration) Request() calculator.Request {
	mode := c.Display.Mode
	if mode == "" {
		mode = constants.DisplayModeTotals
	}
	return calculator.Request{
		Principal:         c.Deal.Principal,
		AnnualRatePercent: c.Deal.AnnualRatePercent,
		TermYears:         c.Deal.TermYears,
		CashflowOrEbitda:  c.Deal.CashflowOrEbitda,
		SalePrice:         c.Deal.SalePrice,
		DisplayMode:       mode,
	}
}

// FromRequest builds a scenario configuration from a calculator request, the
// inverse of Request. Used when exporting a form state to a YAML document.
func FromRequest(req calculator.Request) *Configuration {
	return &Configuration{
		Deal: Deal{
			Principal:         req.Principal,
			AnnualRatePercent: req.AnnualRatePercent,
			TermYears:         req.TermYears,
			CashflowOrEbitda:  req.CashflowOrEbitda,
			SalePrice:         req.SalePrice,
		},
		Display: DisplayConfig{Mode: req.DisplayMode},
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Deal.Principal == 0 {
		warnings = append(warnings, "deal principal is zero - the schedule will contain only zero rows")
	}
	if c.Deal.CashflowOrEbitda == 0 {
		warnings = append(warnings, "deal cashflow/EBITDA is zero - the valuation multiple cannot be computed")
	}
	if c.Deal.SalePrice == 0 {
		warnings = append(warnings, "deal sale price is zero - the valuation multiple will be zero")
	}

	return warnings
}
