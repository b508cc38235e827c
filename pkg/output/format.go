// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/prepaytools/loan-prepay/pkg/amortize"
	"github.com/prepaytools/loan-prepay/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result *amortize.CalculationResult) {
	PrettyFormatTo(os.Stdout, result)
}

// PrettyFormatTo writes the human-readable rendering to w.
func PrettyFormatTo(w io.Writer, result *amortize.CalculationResult) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "--- Prepayment results ---\n")
	fmt.Fprintf(w, "Original monthly payment | %s\n", format.Currency(result.OriginalMonthlyPayment))
	fmt.Fprintf(w, "Original total interest  | %s\n", format.Currency(result.TotalInterestOriginal))
	fmt.Fprintf(w, "New monthly payment      | %s\n", format.Currency(result.NewMonthlyPayment))
	fmt.Fprintf(w, "New total interest       | %s\n", format.Currency(result.TotalInterestNew))
	fmt.Fprintf(w, "Interest savings         | %s\n", format.Currency(result.InterestSavings))
	fmt.Fprintf(w, "Remaining periods        | %d (reduced by %d)\n",
		result.NewRemainingPeriods, result.PeriodReduction)

	if len(result.Schedule) == 0 {
		fmt.Fprintf(w, "\nLoan fully discharged by the prepayment; no remaining schedule.\n")
		return
	}

	fmt.Fprintf(w, "\nPeriod | Payment       | Principal     | Interest      | Balance\n")
	fmt.Fprintf(w, "______ | _____________ | _____________ | _____________ | _____________\n")
	for _, entry := range result.Schedule {
		_, _ = p.Fprintf(w, "%6d | $%12.2f | $%12.2f | $%12.2f | $%12.2f\n",
			entry.Period, entry.Payment, entry.Principal, entry.Interest, entry.RemainingPrincipal)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *amortize.CalculationResult) {
	fmt.Print(CsvString(result))
}

// CsvString returns the comma-separated value rendering as a string.
func CsvString(result *amortize.CalculationResult) string {
	var builder strings.Builder

	builder.WriteString(`"period","payment","principal","interest","remainingPrincipal"` + "\n")
	for _, entry := range result.Schedule {
		fmt.Fprintf(&builder, `"%d","%s","%s","%s","%s"`,
			entry.Period,
			format.NumericCurrency(entry.Payment),
			format.NumericCurrency(entry.Principal),
			format.NumericCurrency(entry.Interest),
			format.NumericCurrency(entry.RemainingPrincipal),
		)
		builder.WriteString("\n")
	}

	return builder.String()
}
