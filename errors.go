package smile

import (
	"errors"
	"fmt"
)

// No quotes were supplied at all.
var ErrEmptyInput = errors.New("no quotes supplied")

// The requested expiry has no matching quotes.
type MissingExpiryError struct {
	Expiry int
}

func (e MissingExpiryError) Error() string {
	return fmt.Sprintf("no quotes for expiry %v", e.Expiry)
}

// A marker's selection set was empty; the mean of an empty set is not
// a number and must not silently propagate as one.
type InsufficientDataError struct {
	Marker string
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("no quotes matched the %v marker", e.Marker)
}

// The evaluator was asked for a delta outside (0,1), or a parameter
// is not a well-defined real number in strict mode.
type InvalidDomainError struct {
	Reason string
}

func (e InvalidDomainError) Error() string {
	return e.Reason
}
