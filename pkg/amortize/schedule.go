package amortize

import (
	"math"

	"github.com/prepaytools/loan-prepay/pkg/constants"
)

// MonthlyRate converts an annual percentage rate into a monthly fractional rate.
func MonthlyRate(annualRate float64) float64 {
	return annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// CalculateMonthlyPayment calculates the fixed equal-installment payment for a
// loan using the standard amortization formula.
func CalculateMonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if annualRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := MonthlyRate(annualRate)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualRate float64) float64 {
	return remainingPrincipal * MonthlyRate(annualRate)
}

// GenerateSchedule creates a full amortization schedule for the given
// repayment method. Periods are 1-based and the final remaining principal is
// clamped to zero to absorb floating-point residue.
func GenerateSchedule(method RepaymentMethod, principal, annualRate float64, periods int) []ScheduleEntry {
	if method == EqualPrincipal {
		return equalPrincipalSchedule(principal, annualRate, periods)
	}
	return equalInstallmentSchedule(principal, annualRate, periods)
}

// TotalInterest sums the interest components of a schedule.
func TotalInterest(schedule []ScheduleEntry) float64 {
	total := 0.00
	for _, entry := range schedule {
		total += entry.Interest
	}
	return total
}

func equalInstallmentSchedule(principal, annualRate float64, periods int) []ScheduleEntry {
	payment := CalculateMonthlyPayment(principal, annualRate, periods)

	schedule := make([]ScheduleEntry, 0, periods)
	balance := principal
	for period := 1; period <= periods; period++ {
		interest := CalculateInterestPayment(balance, annualRate)
		principalPortion := payment - interest
		balance = math.Max(0, balance-principalPortion)
		schedule = append(schedule, ScheduleEntry{
			Period:             period,
			Payment:            payment,
			Principal:          principalPortion,
			Interest:           interest,
			RemainingPrincipal: balance,
		})
	}
	return schedule
}

func equalPrincipalSchedule(principal, annualRate float64, periods int) []ScheduleEntry {
	principalPortion := principal / float64(periods)

	schedule := make([]ScheduleEntry, 0, periods)
	balance := principal
	for period := 1; period <= periods; period++ {
		interest := CalculateInterestPayment(balance, annualRate)
		balance = math.Max(0, balance-principalPortion)
		schedule = append(schedule, ScheduleEntry{
			Period:             period,
			Payment:            principalPortion + interest,
			Principal:          principalPortion,
			Interest:           interest,
			RemainingPrincipal: balance,
		})
	}
	return schedule
}
