package amortize

import (
	"errors"
	"fmt"
)

// ErrTermNotFound is returned by the minimal-term search when no term within
// the search ceiling brings the equal-installment payment at or below the
// target payment. This happens when the target payment does not even cover
// the interest accruing on the principal.
var ErrTermNotFound = errors.New("no term within the search range satisfies the target payment")

// ValidationError describes a loan parameter that failed a precondition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
