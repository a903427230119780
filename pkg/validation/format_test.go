package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		expectError bool
	}{
		{"Pretty format", "pretty", false},
		{"CSV format", "csv", false},
		{"Empty format", "", true},
		{"Unknown format", "json", true},
		{"Case mismatch", "Pretty", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectError && err == nil {
				t.Error("ValidateOutputFormat() returned nil, expected an error")
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateOutputFormat() returned %v, expected nil", err)
			}
		})
	}
}
