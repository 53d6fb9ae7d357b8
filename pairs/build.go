package pairs

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dlpno/coupling"
	"github.com/katalvlaran/dlpno/integral"
)

// Build — threshold screening of all occupied orbital pairs.
//
// Steps:
//  1. Validate the threshold (finite, non-negative) and the orbital space.
//  2. With fewer than two occupied orbitals there is nothing to screen:
//     return an empty set and zero coverage.
//  3. Enumerate candidates (i, j) with i < j in lexicographic order.
//  4. Evaluate every candidate's coupling strength, serially or across
//     opts.Workers goroutines. Each pair's accumulation stays inside one
//     goroutine, so values never depend on scheduling.
//  5. Retain pairs whose strength reaches the threshold, preserving
//     enumeration order, and summarize retention in Coverage.
//
// A nil opts means DefaultOptions(). For fixed inputs the survivor set,
// the coverage, and the reported error are identical at any worker count.
//
// Errors:
//   - ErrInvalidThreshold — threshold is negative, NaN, or ±Inf.
//   - coupling.ErrInvalidInput, coupling.ErrMissingIntegral,
//     coupling.ErrNonPhysicalDenominator — propagated unchanged from the
//     first failing pair in enumeration order.
//   - opts.Ctx.Err() — the build observed cancellation; no partial output
//     is returned.
//
// Complexity: O(nOcc² · nVirt²) integral reads.
func Build(energies []float64, ints integral.Accessor, nOcc int, threshold float64, opts *BuildOptions) (Set, Coverage, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return nil, Coverage{}, fmt.Errorf("threshold %v: %w", threshold, ErrInvalidThreshold)
	}
	if err := coupling.ValidateSpace(energies, ints, nOcc); err != nil {
		return nil, Coverage{}, err
	}

	o := DefaultOptions()
	if opts != nil {
		o = opts.normalized()
	}

	if nOcc < 2 {
		return Set{}, Coverage{}, nil
	}

	cand := make([]Pair, 0, nOcc*(nOcc-1)/2)
	for i := 0; i < nOcc; i++ {
		for j := i + 1; j < nOcc; j++ {
			cand = append(cand, Pair{I: i, J: j})
		}
	}

	values := make([]float64, len(cand))
	if o.Workers == 1 {
		if err := evaluateSerial(o.Ctx, energies, ints, nOcc, cand, values); err != nil {
			return nil, Coverage{}, err
		}
	} else {
		if err := evaluateParallel(o, energies, ints, nOcc, cand, values); err != nil {
			return nil, Coverage{}, err
		}
	}

	set := make(Set, 0, len(cand))
	for k, p := range cand {
		if values[k] >= threshold {
			set = append(set, p)
		}
	}

	return set, Coverage{
		Retained:   len(set),
		Candidates: len(cand),
		Fraction:   float64(len(set)) / float64(len(cand)),
	}, nil
}

// evaluateSerial walks candidates in order, aborting on the first
// evaluation error or observed cancellation.
func evaluateSerial(ctx context.Context, energies []float64, ints integral.Accessor, nOcc int, cand []Pair, values []float64) error {
	for k, p := range cand {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := coupling.Evaluate(energies, ints, nOcc, p.I, p.J)
		if err != nil {
			return err
		}
		values[k] = v
	}

	return nil
}

// evaluateParallel fans candidates out over an errgroup. Evaluation errors
// are recorded per pair instead of cancelling siblings, so every pair
// finishes and the scan below reports the first failure in enumeration
// order, matching what a serial run returns. Only cancellation travels
// through the group.
func evaluateParallel(o BuildOptions, energies []float64, ints integral.Accessor, nOcc int, cand []Pair, values []float64) error {
	errs := make([]error, len(cand))

	g, gctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for k := range cand {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := coupling.Evaluate(energies, ints, nOcc, cand[k].I, cand[k].J)
			if err != nil {
				errs[k] = err
				return nil
			}
			values[k] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := o.Ctx.Err(); err != nil {
		return err
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
