package validation

import (
	"github.com/prepaytools/loan-prepay/pkg/amortize"
)

// ValidateLoanParameters enforces the caller contract on loan parameters
// before they reach the engine.
func ValidateLoanParameters(params amortize.LoanParameters) error {
	return params.Validate()
}

// LoanParameterWarnings returns non-fatal observations about parameters that
// are valid but likely not what the user intended.
func LoanParameterWarnings(params amortize.LoanParameters) []string {
	var warnings []string

	if params.PrepaymentAmount == 0 {
		warnings = append(warnings, "Prepayment amount is zero; the calculation will show no savings")
	}
	if params.AnnualRate == 0 {
		warnings = append(warnings, "Annual rate is zero; the loan accrues no interest")
	}
	if params.AnnualRate > 36 {
		warnings = append(warnings, "Annual rate exceeds 36%; verify the rate is a percentage, not a fraction")
	}
	if params.RemainingPeriods > maxReasonableTermMonths {
		warnings = append(warnings, "Remaining periods exceed 50 years; verify the term is in months")
	}

	return warnings
}

// maxReasonableTermMonths is 50 years in months.
const maxReasonableTermMonths = 600
