package coupling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a malformed orbital space or pair index:
	// nil accessor, negative occupied count, empty virtual partition,
	// dimension mismatch, non-finite energy, or an index outside [0, nOcc).
	ErrInvalidInput = errors.New("coupling: invalid orbital space input")

	// ErrMissingIntegral indicates that a required transformed integral is
	// unavailable from the accessor. Missing integrals are never treated
	// as zero.
	ErrMissingIntegral = errors.New("coupling: transformed integral unavailable")

	// ErrNonPhysicalDenominator indicates an excitation denominator that is
	// zero or positive, which cannot occur for a bound reference state.
	ErrNonPhysicalDenominator = errors.New("coupling: excitation denominator is not negative")
)

// DenominatorError reports the first excitation whose denominator
// ε_i + ε_j - ε_a - ε_b failed to be strictly negative. It unwraps to
// ErrNonPhysicalDenominator, so errors.Is keeps working while the offending
// indices stay available through errors.As.
type DenominatorError struct {
	I, J  int     // occupied pair
	A, B  int     // virtual excitation indices
	Value float64 // offending denominator
}

func (e *DenominatorError) Error() string {
	return fmt.Sprintf("coupling: denominator %g for occupied (%d,%d), virtual (%d,%d) is not negative",
		e.Value, e.I, e.J, e.A, e.B)
}

func (e *DenominatorError) Unwrap() error { return ErrNonPhysicalDenominator }
