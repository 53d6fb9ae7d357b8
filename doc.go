// Package dlpno screens occupied orbital pairs for local correlation
// methods: evaluate the MP2-level coupling strength C(i,j) of every
// occupied pair, keep the pairs that matter, and prove the numbers
// never drift.
//
// 🚀 What is dlpno?
//
//	A deterministic pair-screening toolkit that brings together:
//		• Coupling evaluator: C(i,j) from orbital energies and (pq|rs) integrals
//		• Pair builder: threshold screening with coverage accounting
//		• Orbital spaces: occupied/virtual partitions, canonical or custom
//		• Convergence monitor: absolute and relative energy tests with a latch
//		• Energy assembler: stage-gated MP2, CCSD and CCSD(T) totals
//		• Regression data: self-contained datasets with bitwise fingerprints
//
// ✨ Why choose dlpno?
//
//   - Bitwise reproducible: fixed evaluation order, fingerprinted outputs
//   - Fail-loud physics: a non-negative denominator aborts, never skips
//   - Concurrency without drift: parallel screening, serial semantics
//   - Config as contract: versioned threshold documents, validated on load
//
// Under the hood, everything is organized under focused subpackages:
//
//	integral/     - dense four-index (pq|rs) tensors and the Accessor contract
//	coupling/     - the pair coupling functional and the full C matrix
//	pairs/        - the screening builder, serial or parallel
//	orbital/      - occupied/virtual space descriptions
//	localization/ - localization method registry
//	convergence/  - iteration convergence monitor
//	energy/       - pipeline-complete energy assembly
//	config/       - defaults, tau ladders, threshold documents, runtime config
//	layout/       - artifact naming, run keys, run manifests
//	refdata/      - regression datasets, hashing, verification
//	cmd/dlpno/    - the screen/verify command line
//
// Quick sketch:
//
//	energies, tensor, nOcc  ->  pairs.Build  ->  retained pairs + coverage
//
// Dive into DESIGN.md for the decision record and refdata/testdata for
// the regression baselines.
//
//	go get github.com/katalvlaran/dlpno
package dlpno
