// Package amortize computes loan amortization schedules and models the
// effect of a one-time prepayment under the equal-installment and
// equal-principal repayment methods.
package amortize

import (
	"fmt"
)

// RepaymentMethod selects how a loan amortizes.
type RepaymentMethod string

const (
	// EqualInstallment keeps the total payment constant every period.
	EqualInstallment RepaymentMethod = "equalInstallment"

	// EqualPrincipal keeps the principal portion constant every period.
	EqualPrincipal RepaymentMethod = "equalPrincipal"
)

// ParseRepaymentMethod converts a configuration string into a RepaymentMethod.
func ParseRepaymentMethod(value string) (RepaymentMethod, error) {
	switch RepaymentMethod(value) {
	case EqualInstallment, EqualPrincipal:
		return RepaymentMethod(value), nil
	}
	return "", fmt.Errorf("expected repayment method of %s or %s, got %q",
		EqualInstallment, EqualPrincipal, value)
}

// String returns the configuration spelling of the method.
func (m RepaymentMethod) String() string {
	return string(m)
}

// PrepaymentStrategy selects what a prepayment preserves.
type PrepaymentStrategy string

const (
	// ReducePayment keeps the term and lowers the recurring payment.
	ReducePayment PrepaymentStrategy = "reducePayment"

	// ReduceTerm keeps the recurring payment (or principal portion) and
	// shortens the term.
	ReduceTerm PrepaymentStrategy = "reduceTerm"
)

// ParsePrepaymentStrategy converts a configuration string into a PrepaymentStrategy.
func ParsePrepaymentStrategy(value string) (PrepaymentStrategy, error) {
	switch PrepaymentStrategy(value) {
	case ReducePayment, ReduceTerm:
		return PrepaymentStrategy(value), nil
	}
	return "", fmt.Errorf("expected prepayment strategy of %s or %s, got %q",
		ReducePayment, ReduceTerm, value)
}

// String returns the configuration spelling of the strategy.
func (s PrepaymentStrategy) String() string {
	return string(s)
}

// LoanParameters holds the inputs for one prepayment calculation.
type LoanParameters struct {
	TotalLoan          float64            `json:"totalLoan"`
	RemainingPeriods   int                `json:"remainingPeriods"`
	AnnualRate         float64            `json:"annualRate"`
	PrepaymentAmount   float64            `json:"prepaymentAmount"`
	RepaymentMethod    RepaymentMethod    `json:"repaymentMethod"`
	PrepaymentStrategy PrepaymentStrategy `json:"prepaymentStrategy"`
}

// Validate checks the full caller contract, including that the prepayment is
// strictly less than the total loan. It returns a *ValidationError naming the
// first offending field. Boundary layers (config, HTTP) call this before
// handing parameters to the engine.
func (p LoanParameters) Validate() error {
	if err := p.validateCore(); err != nil {
		return err
	}
	if p.PrepaymentAmount >= p.TotalLoan {
		return &ValidationError{Field: "prepaymentAmount", Message: "must be less than the total loan"}
	}
	return nil
}

// validateCore checks the preconditions the engine itself relies on. A
// prepayment at or above the total loan is deliberately allowed here; the
// engine resolves it through the terminal short circuit.
func (p LoanParameters) validateCore() error {
	if p.TotalLoan <= 0 {
		return &ValidationError{Field: "totalLoan", Message: "must be positive"}
	}
	if p.RemainingPeriods <= 0 {
		return &ValidationError{Field: "remainingPeriods", Message: "must be a positive number of months"}
	}
	if p.AnnualRate < 0 {
		return &ValidationError{Field: "annualRate", Message: "must not be negative"}
	}
	if p.PrepaymentAmount < 0 {
		return &ValidationError{Field: "prepaymentAmount", Message: "must not be negative"}
	}
	if _, err := ParseRepaymentMethod(string(p.RepaymentMethod)); err != nil {
		return &ValidationError{Field: "repaymentMethod", Message: err.Error()}
	}
	if _, err := ParsePrepaymentStrategy(string(p.PrepaymentStrategy)); err != nil {
		return &ValidationError{Field: "prepaymentStrategy", Message: err.Error()}
	}
	return nil
}

// ScheduleEntry holds the breakdown of a single payment.
type ScheduleEntry struct {
	Period             int     `json:"period"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal"`
}

// CalculationResult holds the outcome of a prepayment calculation. All
// currency fields are raw amounts; display formatting belongs to pkg/format.
type CalculationResult struct {
	OriginalMonthlyPayment float64         `json:"originalMonthlyPayment"`
	TotalInterestOriginal  float64         `json:"totalInterestOriginal"`
	NewMonthlyPayment      float64         `json:"newMonthlyPayment"`
	TotalInterestNew       float64         `json:"totalInterestNew"`
	InterestSavings        float64         `json:"interestSavings"`
	PeriodReduction        int             `json:"periodReduction"`
	NewRemainingPeriods    int             `json:"newRemainingPeriods"`
	Schedule               []ScheduleEntry `json:"schedule"`
}
