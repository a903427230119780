// Package amortization provides fixed-rate loan amortization utilities.
package amortization

import (
	"fmt"
	"math"

	"github.com/iwvelando/lbo-calculator/pkg/constants"
	"github.com/iwvelando/lbo-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// Terms holds the immutable inputs describing a fixed-rate loan.
type Terms struct {
	Principal         float64
	AnnualRatePercent float64
	TermYears         int
}

// Months returns the total number of monthly payments over the term.
func (t Terms) Months() int {
	return t.TermYears * constants.MonthsPerYear
}

// MonthlyRate returns the periodic interest rate as a fraction.
func (t Terms) MonthlyRate() float64 {
	return t.AnnualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Row holds the values for a given monthly payment.
type Row struct {
	Month     int
	Year      int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// MonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
func MonthlyPayment(terms Terms) float64 {
	months := terms.Months()
	if terms.AnnualRatePercent == 0 {
		// For zero interest, simply divide the principal by term
		return terms.Principal / float64(months)
	}

	periodicInterestRate := terms.MonthlyRate()
	power := math.Pow(1.00+periodicInterestRate, float64(months))
	discountFactor := (power - 1.00) / power
	return terms.Principal * periodicInterestRate / discountFactor
}

// InterestPortion calculates the interest portion of a payment on the given balance.
func InterestPortion(balance, annualRatePercent float64) float64 {
	return balance * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Schedule produces the month-by-month amortization schedule for a loan. Rows
// are ordered by month, the balance decays monotonically and is floored at
// zero, and the output length is exactly Terms.Months(). Inputs are expected
// to be pre-validated (see pkg/validation); the function is total over that
// domain and returns no errors.
func Schedule(terms Terms) []Row {
	months := terms.Months()
	if months <= 0 {
		return nil
	}

	monthlyPayment := MonthlyPayment(terms)

	rows := make([]Row, 0, months)
	balance := terms.Principal
	for month := 1; month <= months; month++ {
		interest := InterestPortion(balance, terms.AnnualRatePercent)
		principal := monthlyPayment - interest
		balance = mathutil.Max(0, balance-principal)
		if month == months && mathutil.Round(balance) == 0 {
			// We will get machine error otherwise so just set to 0.
			balance = 0
		}
		rows = append(rows, Row{
			Month:     month,
			Year:      (month + constants.MonthsPerYear - 1) / constants.MonthsPerYear,
			Payment:   monthlyPayment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return rows
}

// Generator provides utilities for generating loan amortization schedules
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new generator instance
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// GenerateSchedule creates a complete amortization schedule for a loan
func (g *Generator) GenerateSchedule(terms Terms) []Row {
	rows := Schedule(terms)
	g.logger.Debug(fmt.Sprintf("generated %d-month schedule for principal %.2f at %.2f%%",
		len(rows), terms.Principal, terms.AnnualRatePercent),
		zap.String("op", "amortization.GenerateSchedule"),
	)
	return rows
}
