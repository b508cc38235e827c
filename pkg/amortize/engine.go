package amortize

import (
	"math"

	"go.uber.org/zap"

	"github.com/prepaytools/loan-prepay/pkg/mathutil"
)

// Engine computes prepayment calculations. It holds no state between calls;
// identical parameters always produce identical results.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new engine instance.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Calculate models a one-time prepayment against the loan described by
// params. The parameters are validated up front; degenerate inputs return an
// error rather than nonsensical numbers.
func (e *Engine) Calculate(params LoanParameters) (*CalculationResult, error) {
	if err := params.validateCore(); err != nil {
		return nil, err
	}

	original := GenerateSchedule(params.RepaymentMethod, params.TotalLoan, params.AnnualRate, params.RemainingPeriods)

	// For equal principal the payment declines over the term; the reported
	// original payment is the first period's, the maximum of the sequence.
	result := &CalculationResult{
		OriginalMonthlyPayment: original[0].Payment,
		TotalInterestOriginal:  TotalInterest(original),
	}

	remainingPrincipal := params.TotalLoan - params.PrepaymentAmount
	if remainingPrincipal <= 0 {
		// The prepayment discharges the loan outright.
		e.logger.Debug("prepayment fully discharges the loan",
			zap.String("op", "amortize.Calculate"),
			zap.Float64("totalLoan", params.TotalLoan),
			zap.Float64("prepaymentAmount", params.PrepaymentAmount),
		)
		result.InterestSavings = result.TotalInterestOriginal
		result.PeriodReduction = params.RemainingPeriods
		result.Schedule = []ScheduleEntry{}
		return result, nil
	}

	newPeriods := params.RemainingPeriods
	switch params.PrepaymentStrategy {
	case ReduceTerm:
		result.NewMonthlyPayment = result.OriginalMonthlyPayment
		if params.RepaymentMethod == EqualPrincipal {
			// The principal portion is pinned to the original schedule's, so
			// the shortened term is an exact ceiling division. Rounding the
			// quotient first keeps float residue from pushing an exact
			// division up a whole period.
			originalPortion := params.TotalLoan / float64(params.RemainingPeriods)
			newPeriods = int(math.Ceil(mathutil.Round(remainingPrincipal / originalPortion)))
		} else {
			term, err := MinimalTerm(remainingPrincipal, params.AnnualRate, result.OriginalMonthlyPayment)
			if err != nil {
				return nil, err
			}
			newPeriods = term
		}
		result.PeriodReduction = params.RemainingPeriods - newPeriods
	default:
		// ReducePayment keeps the term and lowers the recurring payment.
	}

	newSchedule := GenerateSchedule(params.RepaymentMethod, remainingPrincipal, params.AnnualRate, newPeriods)
	if params.PrepaymentStrategy == ReducePayment {
		result.NewMonthlyPayment = newSchedule[0].Payment
	}

	result.NewRemainingPeriods = newPeriods
	result.TotalInterestNew = TotalInterest(newSchedule)
	result.InterestSavings = result.TotalInterestOriginal - result.TotalInterestNew
	result.Schedule = newSchedule

	e.logger.Debug("prepayment calculation complete",
		zap.String("op", "amortize.Calculate"),
		zap.String("method", params.RepaymentMethod.String()),
		zap.String("strategy", params.PrepaymentStrategy.String()),
		zap.Int("newRemainingPeriods", result.NewRemainingPeriods),
		zap.Float64("interestSavings", result.InterestSavings),
	)
	return result, nil
}
