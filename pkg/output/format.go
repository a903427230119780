// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/lbo-calculator/internal/calculator"
	"github.com/iwvelando/lbo-calculator/pkg/constants"
	"github.com/iwvelando/lbo-calculator/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result calculator.Response) {
	p := message.NewPrinter(language.English)

	if result.Multiple != nil {
		fmt.Printf("Sale price multiple over cashflow: %s\n", format.Multiple(*result.Multiple))
	} else if result.MultipleNote != "" {
		fmt.Printf("%s\n", result.MultipleNote)
	}

	headline := "Yearly loan payment"
	basis := "annual cashflow"
	if result.DisplayMode == constants.DisplayModeMonthlyAverage {
		headline = "Average monthly loan payment"
		basis = "monthly cashflow"
	}
	if result.DebtService.Ratio != nil {
		_, _ = p.Printf("%s: $%.2f (%s of %s)\n", headline, result.DebtService.Payment,
			format.Multiple(*result.DebtService.Ratio), basis)
	} else {
		_, _ = p.Printf("%s: $%.2f\n", headline, result.DebtService.Payment)
	}

	fmt.Printf("\nYear | Cashflow       | Payment        | Principal      | Interest\n")
	fmt.Printf("____ | ______________ | ______________ | ______________ | ______________\n")
	for _, row := range result.Rows {
		_, _ = p.Printf("%4d | $%13.2f | $%13.2f | $%13.2f | $%13.2f\n",
			row.Year, row.Cashflow, row.Payment, row.Principal, row.Interest)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result calculator.Response) {
	fmt.Print(CsvString(result))
}

// CsvString renders the yearly rows as a CSV document.
func CsvString(result calculator.Response) string {
	var builder strings.Builder
	builder.WriteString(`"year","cashflow","payment","principal","interest"` + "\n")
	for _, row := range result.Rows {
		builder.WriteString(fmt.Sprintf(`"%d","%.2f","%.2f","%.2f","%.2f"`+"\n",
			row.Year, row.Cashflow, row.Payment, row.Principal, row.Interest))
	}
	return builder.String()
}
