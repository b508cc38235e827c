// Package format provides display formatting for currency and percentage
// values. Amounts are rounded half-up to two decimals before printing so
// displayed money never inherits binary-float half-even artifacts.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	rounded := roundDisplay(amount)
	if rounded < 0 {
		return "-$" + printer.Sprintf("%.2f", -rounded)
	}
	return "$" + printer.Sprintf("%.2f", rounded)
}

// NumericCurrency returns a currency string without a currency symbol but
// with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	rounded := roundDisplay(amount)
	if rounded < 0 {
		return "-" + printer.Sprintf("%.2f", -rounded)
	}
	return printer.Sprintf("%.2f", rounded)
}

// Percent returns a percentage string with two decimals and a trailing "%"
// (e.g., "3.85%").
func Percent(value float64) string {
	return printer.Sprintf("%.2f%%", roundDisplay(value))
}

func roundDisplay(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}
