package refdata

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/dlpno/coupling"
)

// Hash returns the regression fingerprint of a set of pair values: the
// SHA-256 of the little-endian float64 bytes of the values sorted by
// (i, j). Sensitive to any bitwise change in any value.
func Hash(values []PairValue) string {
	sorted := make([]PairValue, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].I != sorted[b].I {
			return sorted[a].I < sorted[b].I
		}
		return sorted[a].J < sorted[b].J
	})

	buf := make([]byte, 0, 8*len(sorted))
	var word [8]byte
	for _, v := range sorted {
		binary.LittleEndian.PutUint64(word[:], math.Float64bits(v.Value))
		buf = append(buf, word[:]...)
	}
	sum := sha256.Sum256(buf)

	return hex.EncodeToString(sum[:])
}

// Recompute re-evaluates every coupling strength C(i, j) for i < j in
// lexicographic order, together with the signed pair-energy total, from
// the record's stored inputs.
func Recompute(m *Molecule) ([]PairValue, float64, error) {
	ints, err := m.Tensor()
	if err != nil {
		return nil, 0, err
	}

	values := make([]PairValue, 0, m.NOcc*(m.NOcc-1)/2)
	total := 0.0
	for i := 0; i < m.NOcc; i++ {
		for j := i + 1; j < m.NOcc; j++ {
			e, err := coupling.PairEnergy(m.Energies, ints, m.NOcc, i, j)
			if err != nil {
				return nil, 0, fmt.Errorf("molecule %s: %w", m.ID, err)
			}
			values = append(values, PairValue{I: i, J: j, Value: math.Abs(e)})
			total += e
		}
	}

	return values, total, nil
}

// Verify recomputes the record and compares it against the stored
// reference: every C(i, j) and the signed total within tol, the
// fingerprint bitwise. Any disagreement yields ErrMismatch.
func Verify(m *Molecule, tol float64) error {
	got, total, err := Recompute(m)
	if err != nil {
		return err
	}

	ref := make([]PairValue, len(m.CValues))
	copy(ref, m.CValues)
	sort.Slice(ref, func(a, b int) bool {
		if ref[a].I != ref[b].I {
			return ref[a].I < ref[b].I
		}
		return ref[a].J < ref[b].J
	})

	if len(got) != len(ref) {
		return fmt.Errorf("molecule %s: %d pair values, reference stores %d: %w",
			m.ID, len(got), len(ref), ErrMismatch)
	}
	for k := range got {
		if got[k].I != ref[k].I || got[k].J != ref[k].J {
			return fmt.Errorf("molecule %s: pair (%d,%d) where reference stores (%d,%d): %w",
				m.ID, got[k].I, got[k].J, ref[k].I, ref[k].J, ErrMismatch)
		}
		if delta := math.Abs(got[k].Value - ref[k].Value); !(delta <= tol) {
			return fmt.Errorf("molecule %s: C(%d,%d) = %.17g, reference %.17g, delta %.3g: %w",
				m.ID, got[k].I, got[k].J, got[k].Value, ref[k].Value, delta, ErrMismatch)
		}
	}

	if delta := math.Abs(total - m.ECorrTotal); !(delta <= tol) {
		return fmt.Errorf("molecule %s: pair-energy total %.17g, reference %.17g: %w",
			m.ID, total, m.ECorrTotal, ErrMismatch)
	}

	if h := Hash(got); h != m.Hash {
		return fmt.Errorf("molecule %s: fingerprint %s, reference %s: %w", m.ID, h, m.Hash, ErrMismatch)
	}

	return nil
}

// VerifyDataset verifies every molecule, stopping at the first failure.
func VerifyDataset(d *Dataset, tol float64) error {
	if d == nil || len(d.Molecules) == 0 {
		return ErrEmptyDataset
	}

	for k := range d.Molecules {
		if err := Verify(&d.Molecules[k], tol); err != nil {
			return err
		}
	}

	return nil
}
