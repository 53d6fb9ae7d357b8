// Package orbital tracks which molecular orbitals participate in a
// correlated calculation and how they partition into occupied and virtual
// sets.
package orbital

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexNegative is returned when an orbital index or a partition
	// size is negative.
	ErrIndexNegative = errors.New("orbital: index must be non-negative")

	// ErrIndexDuplicated is returned when an index appears twice within
	// the same partition.
	ErrIndexDuplicated = errors.New("orbital: duplicate index within a partition")

	// ErrSpacesOverlap is returned when an index appears in both the
	// occupied and the virtual partition.
	ErrSpacesOverlap = errors.New("orbital: occupied and virtual partitions overlap")
)

// Space is an immutable occupied/virtual partition of orbital indices.
// Construct it with NewSpace or Canonical; the zero value is an empty
// space with no orbitals.
type Space struct {
	occ  []int
	virt []int
}

// NewSpace validates and copies the two partitions. Indices must be
// non-negative, unique within each partition, and the partitions must be
// disjoint. Construction order is preserved.
func NewSpace(occupied, virtual []int) (*Space, error) {
	inOcc := make(map[int]bool, len(occupied))
	for _, idx := range occupied {
		if idx < 0 {
			return nil, fmt.Errorf("occupied index %d: %w", idx, ErrIndexNegative)
		}
		if inOcc[idx] {
			return nil, fmt.Errorf("occupied index %d: %w", idx, ErrIndexDuplicated)
		}
		inOcc[idx] = true
	}

	inVirt := make(map[int]bool, len(virtual))
	for _, idx := range virtual {
		if idx < 0 {
			return nil, fmt.Errorf("virtual index %d: %w", idx, ErrIndexNegative)
		}
		if inVirt[idx] {
			return nil, fmt.Errorf("virtual index %d: %w", idx, ErrIndexDuplicated)
		}
		inVirt[idx] = true
		if inOcc[idx] {
			return nil, fmt.Errorf("index %d in both partitions: %w", idx, ErrSpacesOverlap)
		}
	}

	return &Space{
		occ:  append([]int(nil), occupied...),
		virt: append([]int(nil), virtual...),
	}, nil
}

// Canonical builds the aufbau partition over nOcc+nVirt orbitals: indices
// [0, nOcc) occupied, [nOcc, nOcc+nVirt) virtual.
func Canonical(nOcc, nVirt int) (*Space, error) {
	if nOcc < 0 {
		return nil, fmt.Errorf("occupied count %d: %w", nOcc, ErrIndexNegative)
	}
	if nVirt < 0 {
		return nil, fmt.Errorf("virtual count %d: %w", nVirt, ErrIndexNegative)
	}

	s := &Space{
		occ:  make([]int, nOcc),
		virt: make([]int, nVirt),
	}
	for i := range s.occ {
		s.occ[i] = i
	}
	for a := range s.virt {
		s.virt[a] = nOcc + a
	}

	return s, nil
}

// Occupied returns a copy of the occupied indices.
func (s *Space) Occupied() []int { return append([]int(nil), s.occ...) }

// Virtual returns a copy of the virtual indices.
func (s *Space) Virtual() []int { return append([]int(nil), s.virt...) }

// NOcc returns the occupied orbital count.
func (s *Space) NOcc() int { return len(s.occ) }

// NVirt returns the virtual orbital count.
func (s *Space) NVirt() int { return len(s.virt) }

// NMO returns the total number of orbitals in the space.
func (s *Space) NMO() int { return len(s.occ) + len(s.virt) }
