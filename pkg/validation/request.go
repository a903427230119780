// Package validation provides input validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/lbo-calculator/pkg/constants"
)

// ValidateTerms checks the loan terms against the documented input domain.
func ValidateTerms(principal, annualRatePercent float64, termYears int) error {
	if principal < 0 {
		return fmt.Errorf("principal must be non-negative, got %.2f", principal)
	}
	if principal > constants.MaxPrincipal {
		return fmt.Errorf("principal exceeds the maximum of %.2f, got %.2f", constants.MaxPrincipal, principal)
	}
	if annualRatePercent < 0 {
		return fmt.Errorf("annual rate must be non-negative, got %.2f", annualRatePercent)
	}
	if annualRatePercent > constants.MaxAnnualRatePercent {
		return fmt.Errorf("annual rate exceeds the maximum of %.2f%%, got %.2f", constants.MaxAnnualRatePercent, annualRatePercent)
	}
	if termYears < 1 {
		return fmt.Errorf("term must be at least 1 year, got %d", termYears)
	}
	if termYears > constants.MaxTermYears {
		return fmt.Errorf("term exceeds the maximum of %d years, got %d", constants.MaxTermYears, termYears)
	}
	return nil
}

// ValidateValuation checks the cashflow and sale price inputs.
func ValidateValuation(cashflowOrEbitda, salePrice float64) error {
	if cashflowOrEbitda < 0 {
		return fmt.Errorf("cashflow/EBITDA must be non-negative, got %.2f", cashflowOrEbitda)
	}
	if cashflowOrEbitda > constants.MaxValuationAmount {
		return fmt.Errorf("cashflow/EBITDA exceeds the maximum of %.2f, got %.2f", constants.MaxValuationAmount, cashflowOrEbitda)
	}
	if salePrice < 0 {
		return fmt.Errorf("sale price must be non-negative, got %.2f", salePrice)
	}
	if salePrice > constants.MaxValuationAmount {
		return fmt.Errorf("sale price exceeds the maximum of %.2f, got %.2f", constants.MaxValuationAmount, salePrice)
	}
	return nil
}

// ValidateDisplayMode checks if the display mode is one of the supported modes.
func ValidateDisplayMode(mode string) error {
	if mode != constants.DisplayModeTotals && mode != constants.DisplayModeMonthlyAverage {
		return fmt.Errorf("expected display mode of %s or %s, got %s",
			constants.DisplayModeTotals, constants.DisplayModeMonthlyAverage, mode)
	}
	return nil
}
