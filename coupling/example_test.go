package coupling_test

import (
	"fmt"

	"github.com/katalvlaran/dlpno/coupling"
	"github.com/katalvlaran/dlpno/integral"
)

// ExampleEvaluate screens the only occupied pair of a minimal three-orbital
// model: two occupied orbitals at -0.5 Hartree, one virtual at +0.5, and a
// separable tensor whose only non-zero factors couple occupied to virtual.
//
// The single excitation term is (2·0.25 - 0.25)·0.25 / (-2.0), so the
// coupling strength is exactly 0.03125.
func ExampleEvaluate() {
	energies := []float64{-0.5, -0.5, 0.5}
	factor := func(p, q int) float64 {
		if p > q {
			p, q = q, p
		}
		if q == 2 && p != 2 {
			return 0.5
		}
		return 0
	}
	ints, err := integral.NewDenseFromFunc(3, func(p, q, r, s int) float64 {
		return factor(p, q) * factor(r, s)
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c, err := coupling.Evaluate(energies, ints, 2, 0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	// Output: 0.03125
}
