// Package calculator implements the request/response boundary between the
// presentation layers and the amortization and valuation cores.
package calculator

import (
	"fmt"

	"github.com/iwvelando/lbo-calculator/pkg/amortization"
	"github.com/iwvelando/lbo-calculator/pkg/constants"
	"github.com/iwvelando/lbo-calculator/pkg/validation"
	"github.com/iwvelando/lbo-calculator/pkg/valuation"
	"go.uber.org/zap"
)

// Request carries the form inputs for one computation.
type Request struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermYears         int     `json:"termYears"`
	CashflowOrEbitda  float64 `json:"cashflowOrEbitda"`
	SalePrice         float64 `json:"salePrice"`
	DisplayMode       string  `json:"displayMode"`
}

// YearRow is one row of the yearly presentation table. The cashflow column is
// the constant annual EBITDA in totals view, or EBITDA divided by twelve in
// monthly-average view.
type YearRow struct {
	Year      int     `json:"year"`
	Cashflow  float64 `json:"cashflow"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// Response carries the full result of one computation. Multiple is nil when
// the cashflow/EBITDA is zero; MultipleNote then carries the informational
// message to show in its place.
type Response struct {
	Rows         []YearRow             `json:"rows"`
	Multiple     *float64              `json:"multiple,omitempty"`
	MultipleNote string                `json:"multipleNote,omitempty"`
	DebtService  valuation.DebtService `json:"debtService"`
	DisplayMode  string                `json:"displayMode"`
}

// MultipleUnavailableNote is shown when the valuation multiple cannot be computed.
const MultipleUnavailableNote = "enter a non-zero cashflow/EBITDA to compute the multiple"

// Normalize fills in defaults for optional request fields.
func (r *Request) Normalize() {
	if r.DisplayMode == "" {
		r.DisplayMode = constants.DisplayModeTotals
	}
}

// Validate checks the request against the documented input domain.
func (r Request) Validate() error {
	if err := validation.ValidateTerms(r.Principal, r.AnnualRatePercent, r.TermYears); err != nil {
		return err
	}
	if err := validation.ValidateValuation(r.CashflowOrEbitda, r.SalePrice); err != nil {
		return err
	}
	return validation.ValidateDisplayMode(r.DisplayMode)
}

// Compute runs one full calculation pass over the request. Every call
// recomputes the schedule from scratch; no state is shared between calls.
// Request validation is the only error source.
func Compute(logger *zap.Logger, req Request) (Response, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return Response{}, fmt.Errorf("invalid request: %w", err)
	}

	generator := amortization.NewGenerator(logger)
	schedule := generator.GenerateSchedule(amortization.Terms{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TermYears:         req.TermYears,
	})

	mode := amortization.DisplayMode(req.DisplayMode)
	yearly := amortization.AggregateByYear(schedule, mode)

	monthlyPayment := 0.0
	if len(schedule) > 0 {
		monthlyPayment = schedule[0].Payment
	}

	// The cashflow column and the headline payment follow the display mode:
	// totals view compares yearly figures, monthly-average view monthly ones.
	cashflow := req.CashflowOrEbitda
	headlinePayment := monthlyPayment * constants.MonthsPerYear
	if mode == amortization.ModeMonthlyAverage {
		cashflow = req.CashflowOrEbitda / constants.MonthsPerYear
		headlinePayment = monthlyPayment
	}

	rows := make([]YearRow, 0, len(yearly))
	for _, year := range yearly {
		rows = append(rows, YearRow{
			Year:      year.Year,
			Cashflow:  cashflow,
			Payment:   year.Payment,
			Principal: year.Principal,
			Interest:  year.Interest,
		})
	}

	response := Response{
		Rows:        rows,
		DebtService: valuation.NewDebtService(headlinePayment, cashflow),
		DisplayMode: req.DisplayMode,
	}

	if multiple, ok := valuation.Multiple(req.SalePrice, req.CashflowOrEbitda); ok {
		response.Multiple = &multiple
	} else {
		response.MultipleNote = MultipleUnavailableNote
	}

	logger.Debug(fmt.Sprintf("computed %d yearly rows for %d-year term", len(rows), req.TermYears),
		zap.String("op", "calculator.Compute"),
	)

	return response, nil
}
