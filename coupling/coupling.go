package coupling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dlpno/integral"
)

// ValidateSpace checks that the orbital space described by canonical
// energies, an integral accessor, and an occupied count is usable for pair
// evaluation:
//
//   - ints must be non-nil and its dimension must equal len(energies);
//   - nOcc must lie in [0, len(energies)) so the virtual partition is
//     non-empty;
//   - every orbital energy must be finite.
//
// All violations wrap ErrInvalidInput.
// Complexity: O(n) over the energy vector.
func ValidateSpace(energies []float64, ints integral.Accessor, nOcc int) error {
	if ints == nil {
		return fmt.Errorf("nil integral accessor: %w", ErrInvalidInput)
	}
	if nOcc < 0 {
		return fmt.Errorf("occupied count %d is negative: %w", nOcc, ErrInvalidInput)
	}
	if len(energies) <= nOcc {
		return fmt.Errorf("%d orbitals with %d occupied leaves no virtuals: %w",
			len(energies), nOcc, ErrInvalidInput)
	}
	if d := ints.Dim(); d != len(energies) {
		return fmt.Errorf("tensor dimension %d vs %d orbital energies: %w",
			d, len(energies), ErrInvalidInput)
	}
	for p, e := range energies {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return fmt.Errorf("orbital energy %v at index %d: %w", e, p, ErrInvalidInput)
		}
	}

	return nil
}

// checkPair validates that both occupied indices lie in [0, nOcc).
func checkPair(nOcc, i, j int) error {
	if i < 0 || i >= nOcc {
		return fmt.Errorf("occupied index i=%d outside [0,%d): %w", i, nOcc, ErrInvalidInput)
	}
	if j < 0 || j >= nOcc {
		return fmt.Errorf("occupied index j=%d outside [0,%d): %w", j, nOcc, ErrInvalidInput)
	}

	return nil
}

// pairEnergy accumulates the signed pair correlation energy for a validated
// space. The double loop runs outer index a ascending, inner index b
// ascending, into a single accumulator; this fixed order is what makes
// results bitwise reproducible.
func pairEnergy(energies []float64, ints integral.Accessor, nOcc, i, j int) (float64, error) {
	if i == j {
		// Same-orbital pairs carry no coupling in this screening model.
		return 0, nil
	}

	n := len(energies)
	var sum float64
	for a := nOcc; a < n; a++ {
		for b := nOcc; b < n; b++ {
			g1, ok := ints.At(i, a, j, b)
			if !ok {
				return 0, fmt.Errorf("(%d %d|%d %d): %w", i, a, j, b, ErrMissingIntegral)
			}
			g2, ok := ints.At(i, b, j, a)
			if !ok {
				return 0, fmt.Errorf("(%d %d|%d %d): %w", i, b, j, a, ErrMissingIntegral)
			}
			den := energies[i] + energies[j] - energies[a] - energies[b]
			if den >= 0 {
				return 0, &DenominatorError{I: i, J: j, A: a, B: b, Value: den}
			}
			num := (2.0*g1 - g2) * g1
			sum += num / den
		}
	}

	return sum, nil
}

// PairEnergy — signed semi-canonical MP2 pair correlation energy.
//
// Description:
//
//	Computes e(i,j) = Σ_{a,b in virtual} (2·(ia|jb) - (ib|ja)) · (ia|jb) / (ε_i + ε_j - ε_a - ε_b)
//	for one occupied pair. The sign is kept so callers can assemble
//	correlation energy totals; screening decisions use Evaluate, which
//	takes the magnitude.
//
// Validation order is fixed: orbital space first, then i, then j. A pair
// with i == j returns exactly zero after validation.
//
// Errors:
//   - ErrInvalidInput            — malformed space or pair index.
//   - ErrMissingIntegral         — a required (ia|jb) or (ib|ja) is unavailable.
//   - ErrNonPhysicalDenominator  — via *DenominatorError, on the first
//     zero-or-positive denominator in loop order.
//
// Complexity: O(nVirt²) integral reads.
func PairEnergy(energies []float64, ints integral.Accessor, nOcc, i, j int) (float64, error) {
	if err := ValidateSpace(energies, ints, nOcc); err != nil {
		return 0, err
	}
	if err := checkPair(nOcc, i, j); err != nil {
		return 0, err
	}

	return pairEnergy(energies, ints, nOcc, i, j)
}

// Evaluate — coupling strength C(i,j) of one occupied orbital pair.
//
// Description:
//
//	C(i,j) is the absolute value of the signed pair correlation energy
//	returned by PairEnergy, evaluated over the full virtual space with
//	both integral orderings (ia|jb) and (ib|ja). C is symmetric in its
//	arguments and C(i,i) = 0.
//
// Example:
//
//	c, err := coupling.Evaluate(energies, ints, nOcc, 0, 1)
//
// Errors: same taxonomy as PairEnergy.
// Complexity: O(nVirt²) integral reads.
func Evaluate(energies []float64, ints integral.Accessor, nOcc, i, j int) (float64, error) {
	e, err := PairEnergy(energies, ints, nOcc, i, j)
	if err != nil {
		return 0, err
	}

	return math.Abs(e), nil
}
