// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/lbo-calculator/pkg/amortization"
)

// FindYear finds a yearly row by year in the aggregated results.
// Returns a pointer to the row if found, nil otherwise.
func FindYear(rows []amortization.YearlyRow, year int) *amortization.YearlyRow {
	for i := range rows {
		if rows[i].Year == year {
			return &rows[i]
		}
	}
	return nil
}
