package amortization

import (
	"github.com/iwvelando/lbo-calculator/pkg/constants"
)

// DisplayMode selects how yearly aggregation reports amounts.
type DisplayMode string

const (
	// ModeTotals reports the summed amounts per year.
	ModeTotals DisplayMode = constants.DisplayModeTotals

	// ModeMonthlyAverage reports the average monthly amounts within each year.
	ModeMonthlyAverage DisplayMode = constants.DisplayModeMonthlyAverage
)

// YearlyRow holds the aggregated amounts for one year of the schedule. Months
// is the number of schedule rows in the year group; a final partial year may
// have fewer than twelve.
type YearlyRow struct {
	Year      int
	Payment   float64
	Principal float64
	Interest  float64
	Months    int
}

// AggregateByYear reduces a monthly schedule to one row per year, preserving
// ascending year order. ModeMonthlyAverage divides each summed amount by the
// number of months in the year group. Empty input yields nil output.
func AggregateByYear(rows []Row, mode DisplayMode) []YearlyRow {
	if len(rows) == 0 {
		return nil
	}

	var yearly []YearlyRow
	for _, row := range rows {
		if len(yearly) == 0 || yearly[len(yearly)-1].Year != row.Year {
			yearly = append(yearly, YearlyRow{Year: row.Year})
		}
		current := &yearly[len(yearly)-1]
		current.Payment += row.Payment
		current.Principal += row.Principal
		current.Interest += row.Interest
		current.Months++
	}

	if mode == ModeMonthlyAverage {
		for i := range yearly {
			months := float64(yearly[i].Months)
			yearly[i].Payment /= months
			yearly[i].Principal /= months
			yearly[i].Interest /= months
		}
	}

	return yearly
}
