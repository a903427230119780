package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Negative amount", -1234.56, "-$1,234.56"},
		{"Zero", 0.0, "$0.00"},
		{"Under one thousand", 999.99, "$999.99"},
		{"Millions", 1000000.0, "$1,000,000.00"},
		{"Default principal", 700000.0, "$700,000.00"},
		{"Rounds half up", 2041.665, "$2,041.67"},
		{"Rounds down", 9407.784, "$9,407.78"},
		{"Small fraction", 0.004, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Currency(tt.input); result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMultiple(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Reference multiple", 1000000.0 / 300000.0, "3.33x"},
		{"Exact multiple", 3.0, "3.00x"},
		{"Below one", 0.376, "0.38x"},
		{"Zero", 0.0, "0.00x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Multiple(tt.input); result != tt.expected {
				t.Errorf("Multiple(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
