package amortize

import (
	"math"

	"github.com/prepaytools/loan-prepay/pkg/constants"
)

// MinimalTerm finds the smallest term in months whose equal-installment
// payment for the given principal and rate does not exceed targetPayment.
//
// The payment is strictly decreasing in the term for a fixed principal and
// rate, so an integer binary search over [MinTermMonths, MaxTermMonths]
// converges in O(log n) probes. When even the longest term cannot bring the
// payment down to the target the search fails with ErrTermNotFound.
func MinimalTerm(principal, annualRate, targetPayment float64) (int, error) {
	if targetPayment <= 0 {
		return 0, ErrTermNotFound
	}

	if annualRate == 0 {
		// Zero interest amortizes linearly; solve directly.
		term := int(math.Ceil(principal / targetPayment))
		if term < constants.MinTermMonths {
			term = constants.MinTermMonths
		}
		if term > constants.MaxTermMonths {
			return 0, ErrTermNotFound
		}
		return term, nil
	}

	low := constants.MinTermMonths
	high := constants.MaxTermMonths
	found := 0
	for low <= high {
		mid := (low + high) / 2
		if CalculateMonthlyPayment(principal, annualRate, mid) <= targetPayment {
			found = mid
			high = mid - 1
		} else {
			low = mid + 1
		}
	}

	if found == 0 {
		return 0, ErrTermNotFound
	}
	return found, nil
}
