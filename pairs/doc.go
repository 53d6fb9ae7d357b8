// Package pairs screens occupied orbital pairs for correlated treatment.
//
// Build enumerates every unordered occupied pair (i, j) with i < j,
// evaluates its coupling strength through the coupling package, and retains
// the pairs whose strength reaches a caller-supplied threshold. The survivor
// list plus a Coverage summary is the contract downstream consumers (pair
// natural orbital construction, amplitude solvers) build on.
//
// # Determinism
//
// The survivor set is reproducible bit for bit: candidates are enumerated
// in lexicographic order, each pair's double sum runs inside a single
// goroutine in a fixed order, and retention scans results in enumeration
// order. The Workers option changes wall-clock time only, never values,
// ordering, or the reported first error.
//
// # Failure semantics
//
// Screening never degrades silently. Any evaluation error (missing
// integral, non-physical denominator, malformed space) aborts the build
// with no partial output, as does context cancellation.
package pairs
