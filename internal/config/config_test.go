package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testConfigYAML = `deal:
  principal: 500000
  annualRatePercent: 4.25
  termYears: 10
  cashflowOrEbitda: 250000
  salePrice: 900000
display:
  mode: monthly-average
logging:
  level: debug
  format: console
output:
  format: csv
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeTestConfig(t, testConfigYAML)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() returned error: %v", err)
	}

	if conf.Deal.Principal != 500000 {
		t.Errorf("principal = %v, expected 500000", conf.Deal.Principal)
	}
	if conf.Deal.AnnualRatePercent != 4.25 {
		t.Errorf("annual rate = %v, expected 4.25", conf.Deal.AnnualRatePercent)
	}
	if conf.Deal.TermYears != 10 {
		t.Errorf("term years = %v, expected 10", conf.Deal.TermYears)
	}
	if conf.Display.Mode != "monthly-average" {
		t.Errorf("display mode = %q, expected monthly-average", conf.Display.Mode)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("logging config = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Error("LoadConfiguration() returned nil error for missing file")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(testConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() returned error: %v", err)
	}
	if conf.Deal.SalePrice != 900000 {
		t.Errorf("sale price = %v, expected 900000", conf.Deal.SalePrice)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	// A config file setting only the log level leaves the deal at defaults.
	conf, err := LoadConfigurationFromReader(strings.NewReader("logging:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() returned error: %v", err)
	}

	defaults := DefaultConfiguration()
	if conf.Deal != defaults.Deal {
		t.Errorf("deal = %+v, expected defaults %+v", conf.Deal, defaults.Deal)
	}
	if conf.Display.Mode != "totals" {
		t.Errorf("display mode = %q, expected default totals", conf.Display.Mode)
	}
	if conf.Logging.Level != "warn" {
		t.Errorf("logging level = %q, expected warn", conf.Logging.Level)
	}
}

func TestRequestRoundTrip(t *testing.T) {
	conf := DefaultConfiguration()

	req := conf.Request()
	if req.Principal != 700000 || req.AnnualRatePercent != 3.5 || req.TermYears != 7 {
		t.Errorf("Request() terms = %+v, expected the default deal", req)
	}
	if req.DisplayMode != "totals" {
		t.Errorf("Request() display mode = %q, expected totals", req.DisplayMode)
	}

	back := FromRequest(req)
	if back.Deal != conf.Deal {
		t.Errorf("FromRequest(Request()) deal = %+v, expected %+v", back.Deal, conf.Deal)
	}
	if back.Display.Mode != conf.Display.Mode {
		t.Errorf("FromRequest(Request()) display mode = %q, expected %q", back.Display.Mode, conf.Display.Mode)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		mutate           func(*Configuration)
		expectedWarnings int
	}{
		{"Default configuration is clean", func(c *Configuration) {}, 0},
		{"Zero principal", func(c *Configuration) { c.Deal.Principal = 0 }, 1},
		{"Zero cashflow", func(c *Configuration) { c.Deal.CashflowOrEbitda = 0 }, 1},
		{"Zero sale price", func(c *Configuration) { c.Deal.SalePrice = 0 }, 1},
		{"Everything zero", func(c *Configuration) { c.Deal = Deal{TermYears: 1} }, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := DefaultConfiguration()
			tt.mutate(conf)
			warnings := conf.ValidateConfiguration()
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("ValidateConfiguration() returned %d warnings %v, expected %d",
					len(warnings), warnings, tt.expectedWarnings)
			}
		})
	}
}
