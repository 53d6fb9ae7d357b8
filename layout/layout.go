// Package layout names the intermediate artifacts of a calculation:
// per-pair cache directories, per-iteration solver directories, run
// identifiers, and the run manifest that makes an artifact tree
// reproducible.
//
// Naming is deterministic and collision-free. Pair and iteration helpers
// are pure string operations with no filesystem side effects; creating
// the directories is the caller's concern.
package layout

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNegativeIteration is returned by IterationDir for iteration < 0.
var ErrNegativeIteration = errors.New("layout: iteration must be non-negative")

// formatIndex renders an orbital index zero-padded to at least 4 digits.
// Wider indices expand naturally and a negative sign stays ahead of the
// padding.
func formatIndex(idx int) string {
	if idx < 0 {
		return "-" + fmt.Sprintf("%04d", -idx)
	}

	return fmt.Sprintf("%04d", idx)
}

// PairKey returns the canonical artifact key of an orbital pair, for
// example PairKey(15, 7) == "pair_0007_0015". Argument order is
// normalized so the smaller index always comes first.
func PairKey(i, j int) string {
	if j < i {
		i, j = j, i
	}

	return fmt.Sprintf("pair_%s_%s", formatIndex(i), formatIndex(j))
}

// PairDir returns the cache directory of pair (i, j) under base.
func PairDir(base string, i, j int) string {
	return filepath.Join(base, PairKey(i, j))
}

// IterationDir returns the artifact directory of one solver iteration
// under base, for example "<base>/iter_007".
func IterationDir(base string, iteration int) (string, error) {
	if iteration < 0 {
		return "", fmt.Errorf("iteration %d: %w", iteration, ErrNegativeIteration)
	}

	return filepath.Join(base, fmt.Sprintf("iter_%03d", iteration)), nil
}

// NewRunKey returns a fresh operational run identifier, "run_" followed
// by a random UUID. Run keys label artifact trees and log streams; they
// never enter any numerical path.
func NewRunKey() string {
	return "run_" + uuid.NewString()
}
