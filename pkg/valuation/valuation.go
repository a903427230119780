// Package valuation provides simple deal valuation metrics.
package valuation

// Multiple returns the sale price expressed as a multiple of annual
// cashflow/EBITDA. ok is false when the cashflow is not positive; callers
// display an informational message instead of a number in that case.
func Multiple(salePrice, ebitda float64) (float64, bool) {
	if ebitda <= 0 {
		return 0, false
	}
	return salePrice / ebitda, true
}

// CoverageRatio returns the debt service payment as a multiple of the
// cashflow available to cover it, with the same zero guard as Multiple.
func CoverageRatio(payment, cashflow float64) (float64, bool) {
	if cashflow <= 0 {
		return 0, false
	}
	return payment / cashflow, true
}

// DebtService summarizes the headline payment against the cashflow servicing
// it. Ratio is nil when the cashflow is zero.
type DebtService struct {
	Payment  float64  `json:"payment"`
	Cashflow float64  `json:"cashflow"`
	Ratio    *float64 `json:"ratio,omitempty"`
}

// NewDebtService builds the debt service summary for a payment and cashflow pair.
func NewDebtService(payment, cashflow float64) DebtService {
	summary := DebtService{Payment: payment, Cashflow: cashflow}
	if ratio, ok := CoverageRatio(payment, cashflow); ok {
		summary.Ratio = &ratio
	}
	return summary
}
