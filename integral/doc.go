// Package integral stores transformed two-electron repulsion integrals in
// the chemist (Mulliken) index convention and defines the access contract
// consumed by the coupling evaluator.
//
// An element At(p, q, r, s) is the value (pq|rs): orbitals p and q belong to
// electron one, r and s to electron two. The full four-index range is kept
// with no symmetry packing; consumers that want the permutational symmetries
// validated can call Dense.CheckSymmetry, but nothing in this package
// assumes them.
//
// Missing elements are first-class. Accessor.At reports availability through
// its second return value and Dense tracks unwritten elements explicitly, so
// an incompletely transformed tensor surfaces as a hard error downstream
// instead of a silent zero.
package integral
