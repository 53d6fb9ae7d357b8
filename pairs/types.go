package pairs

import (
	"context"
	"errors"
	"sort"
)

// ErrInvalidThreshold is returned by Build when the retention threshold is
// negative, NaN, or infinite.
var ErrInvalidThreshold = errors.New("pairs: threshold must be a finite non-negative number")

// Pair is one unordered occupied orbital pair, stored with I < J.
type Pair struct {
	I, J int
}

// MakePair returns the normalized pair for two occupied indices, swapping
// them if needed so that I <= J holds.
func MakePair(i, j int) Pair {
	if j < i {
		i, j = j, i
	}

	return Pair{I: i, J: j}
}

// Set is a survivor list sorted lexicographically by (I, J). Build returns
// sets in this order; Contains relies on it.
type Set []Pair

// Contains reports whether the unordered pair (i, j) survived screening.
// The argument order does not matter.
// Complexity: O(log n) via binary search.
func (s Set) Contains(i, j int) bool {
	p := MakePair(i, j)
	k := sort.Search(len(s), func(m int) bool {
		if s[m].I != p.I {
			return s[m].I >= p.I
		}
		return s[m].J >= p.J
	})

	return k < len(s) && s[k] == p
}

// Coverage summarizes one screening run.
type Coverage struct {
	// Retained is the number of pairs that reached the threshold.
	Retained int

	// Candidates is the number of enumerated pairs, nOcc·(nOcc-1)/2.
	Candidates int

	// Fraction is Retained divided by Candidates, or 0 when there were
	// no candidates at all.
	Fraction float64
}

// BuildOptions tunes a screening run.
type BuildOptions struct {
	// Ctx allows cancellation and deadlines. A cancelled context aborts
	// the build with ctx.Err() and no partial output.
	Ctx context.Context

	// Workers bounds the number of concurrent pair evaluations. Values
	// below 1 are treated as 1. Results are identical at any setting.
	Workers int
}

// DefaultOptions returns serial screening under context.Background().
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// normalized fills zero values so Build never branches on nil.
func (o BuildOptions) normalized() BuildOptions {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	return o
}
