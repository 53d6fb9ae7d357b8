// Package coupling computes semi-canonical MP2 pair coupling strengths for
// pairs of occupied molecular orbitals.
//
// The coupling strength of an occupied pair (i, j) is the absolute value of
// its second-order pair correlation energy,
//
//	C(i,j) = | Σ_{a,b in virtual} (2·(ia|jb) - (ib|ja)) · (ia|jb) / (ε_i + ε_j - ε_a - ε_b) |
//
// where (pq|rs) are transformed two-electron integrals in the chemist
// convention and ε are canonical orbital energies. The magnitude estimates
// how strongly two occupied orbitals correlate and drives pair screening.
//
// # Contracts
//
//   - Orbital energies are ordered occupied-first: indices [0, nOcc) are
//     occupied, [nOcc, n) are virtual, and the virtual partition must be
//     non-empty.
//   - Every excitation denominator ε_i + ε_j - ε_a - ε_b must be strictly
//     negative. A zero or positive denominator signals a broken reference
//     state and aborts evaluation with a DenominatorError; there is no
//     fallback.
//   - Integrals are read through integral.Accessor; an unavailable element
//     aborts evaluation with ErrMissingIntegral rather than being treated
//     as zero.
//
// # Determinism
//
// Evaluation accumulates terms in a fixed order (outer virtual index
// ascending, then inner virtual index ascending) into a single float64
// accumulator, so repeated calls on identical inputs return bitwise
// identical results.
package coupling
