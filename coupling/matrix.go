package coupling

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dlpno/integral"
)

// Matrix assembles the full symmetric coupling-strength matrix over the
// occupied space.
//
// Steps:
//  1. Validate the orbital space once; nOcc must be at least 1 so the
//     matrix has a positive dimension.
//  2. Evaluate C(i,j) for every pair i < j and mirror it through SetSym.
//  3. Leave the diagonal at zero: self-coupling is null by definition.
//
// The first evaluation error aborts assembly and is returned unchanged, so
// the error taxonomy matches Evaluate.
// Complexity: O(nOcc² · nVirt²) integral reads, O(nOcc²) memory.
func Matrix(energies []float64, ints integral.Accessor, nOcc int) (*mat.SymDense, error) {
	if err := ValidateSpace(energies, ints, nOcc); err != nil {
		return nil, err
	}
	if nOcc < 1 {
		return nil, fmt.Errorf("coupling matrix needs at least one occupied orbital, have %d: %w",
			nOcc, ErrInvalidInput)
	}

	m := mat.NewSymDense(nOcc, nil)
	for i := 0; i < nOcc; i++ {
		for j := i + 1; j < nOcc; j++ {
			e, err := pairEnergy(energies, ints, nOcc, i, j)
			if err != nil {
				return nil, err
			}
			m.SetSym(i, j, math.Abs(e))
		}
	}

	return m, nil
}
