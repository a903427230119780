package valuation

import (
	"math"
	"testing"
)

func TestMultiple(t *testing.T) {
	tests := []struct {
		name       string
		salePrice  float64
		ebitda     float64
		expected   float64
		expectedOK bool
	}{
		{
			name:       "Reference deal",
			salePrice:  1000000,
			ebitda:     300000,
			expected:   3.3333,
			expectedOK: true,
		},
		{
			name:       "Exact multiple",
			salePrice:  900000,
			ebitda:     300000,
			expected:   3.0,
			expectedOK: true,
		},
		{
			name:       "Zero EBITDA suppresses the multiple",
			salePrice:  1000000,
			ebitda:     0,
			expectedOK: false,
		},
		{
			name:       "Zero sale price",
			salePrice:  0,
			ebitda:     300000,
			expected:   0,
			expectedOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Multiple(tt.salePrice, tt.ebitda)

			if ok != tt.expectedOK {
				t.Fatalf("Multiple() ok = %v, expected %v", ok, tt.expectedOK)
			}
			if ok && math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Multiple() = %.4f, expected %.4f", result, tt.expected)
			}
		})
	}
}

func TestCoverageRatio(t *testing.T) {
	tests := []struct {
		name       string
		payment    float64
		cashflow   float64
		expected   float64
		expectedOK bool
	}{
		{
			name:       "Annual payment against annual cashflow",
			payment:    112893.36,
			cashflow:   300000,
			expected:   0.3763,
			expectedOK: true,
		},
		{
			name:       "Payment exceeding cashflow",
			payment:    50000,
			cashflow:   25000,
			expected:   2.0,
			expectedOK: true,
		},
		{
			name:       "Zero cashflow",
			payment:    9407.78,
			cashflow:   0,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := CoverageRatio(tt.payment, tt.cashflow)

			if ok != tt.expectedOK {
				t.Fatalf("CoverageRatio() ok = %v, expected %v", ok, tt.expectedOK)
			}
			if ok && math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("CoverageRatio() = %.4f, expected %.4f", result, tt.expected)
			}
		})
	}
}

func TestNewDebtService(t *testing.T) {
	summary := NewDebtService(112893.36, 300000)
	if summary.Ratio == nil {
		t.Fatal("NewDebtService() ratio is nil, expected a value for positive cashflow")
	}
	if math.Abs(*summary.Ratio-112893.36/300000) > 1e-9 {
		t.Errorf("NewDebtService() ratio = %.6f, expected %.6f", *summary.Ratio, 112893.36/300000)
	}

	noCashflow := NewDebtService(9407.78, 0)
	if noCashflow.Ratio != nil {
		t.Errorf("NewDebtService() ratio = %v, expected nil for zero cashflow", *noCashflow.Ratio)
	}
	if noCashflow.Payment != 9407.78 {
		t.Errorf("NewDebtService() payment = %v, expected 9407.78", noCashflow.Payment)
	}
}
