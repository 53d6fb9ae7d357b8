package integral

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Sentinel errors shared by tensor constructors and accessors.
var (
	// ErrBadDimension is returned when a tensor dimension is not positive,
	// or when backing data does not hold exactly dim⁴ elements.
	ErrBadDimension = errors.New("integral: tensor dimension must be positive")

	// ErrIndexOutOfRange is returned by Set when an index lies outside [0, Dim).
	ErrIndexOutOfRange = errors.New("integral: orbital index out of range")

	// ErrNonFinite is returned when a NaN or ±Inf value is written into a
	// tensor. Missing elements are represented separately; a stored value is
	// always finite.
	ErrNonFinite = errors.New("integral: non-finite integral value")

	// ErrAsymmetric is returned by CheckSymmetry when two permutation-related
	// elements disagree beyond the given tolerance.
	ErrAsymmetric = errors.New("integral: permutational symmetry violated")
)

// Accessor is the read contract for transformed two-electron integrals in
// the chemist convention: At(p, q, r, s) returns (pq|rs) together with an
// availability flag. At must return false for out-of-range indices and for
// elements the backing store cannot provide. Implementations must be safe
// for concurrent readers.
type Accessor interface {
	// Dim returns the orbital count n; valid indices are [0, n).
	Dim() int

	// At returns the element (pq|rs) and true, or 0 and false when the
	// element is out of range or unavailable.
	At(p, q, r, s int) (float64, bool)
}

// Dense is a four-index tensor backed by a flat row-major slice of length
// Dim⁴. Elements start out missing; Set and the FromSlice/FromFunc
// constructors fill them with finite values only, so a NaN in the backing
// store can mean nothing but "never written".
//
// Dense is safe for concurrent readers once construction and all writes
// have completed.
type Dense struct {
	n    int
	data []float64
}

var _ Accessor = (*Dense)(nil)

// NewDense returns an n-orbital tensor with every element missing.
// Complexity: O(n⁴) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("dimension %d: %w", n, ErrBadDimension)
	}
	data := make([]float64, n*n*n*n)
	for i := range data {
		data[i] = math.NaN()
	}

	return &Dense{n: n, data: data}, nil
}

// NewDenseFromSlice builds a complete n-orbital tensor from n⁴ values laid
// out row-major over (p, q, r, s). The slice is copied; every value must be
// finite.
// Complexity: O(n⁴) time and memory.
func NewDenseFromSlice(n int, data []float64) (*Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("dimension %d: %w", n, ErrBadDimension)
	}
	if want := n * n * n * n; len(data) != want {
		return nil, fmt.Errorf("have %d values, need %d: %w", len(data), want, ErrBadDimension)
	}
	for i, v := range data {
		if !isFinite(v) {
			return nil, fmt.Errorf("value %v at flat index %d: %w", v, i, ErrNonFinite)
		}
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Dense{n: n, data: cp}, nil
}

// NewDenseFromFunc builds a complete n-orbital tensor by evaluating f for
// every index quadruple in row-major order. Every produced value must be
// finite.
// Complexity: O(n⁴) calls to f.
func NewDenseFromFunc(n int, f func(p, q, r, s int) float64) (*Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("dimension %d: %w", n, ErrBadDimension)
	}
	d := &Dense{n: n, data: make([]float64, n*n*n*n)}
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					v := f(p, q, r, s)
					if !isFinite(v) {
						return nil, fmt.Errorf("value %v at (%d %d|%d %d): %w", v, p, q, r, s, ErrNonFinite)
					}
					d.data[d.offset(p, q, r, s)] = v
				}
			}
		}
	}

	return d, nil
}

// Dim returns the orbital count.
func (d *Dense) Dim() int { return d.n }

// offset maps (p, q, r, s) to the flat index. Callers validate ranges.
func (d *Dense) offset(p, q, r, s int) int {
	return ((p*d.n+q)*d.n+r)*d.n + s
}

// inRange reports whether all four indices lie in [0, n).
func (d *Dense) inRange(p, q, r, s int) bool {
	return p >= 0 && p < d.n &&
		q >= 0 && q < d.n &&
		r >= 0 && r < d.n &&
		s >= 0 && s < d.n
}

// At returns the element (pq|rs) and true, or 0 and false when the indices
// are out of range or the element was never written.
// Complexity: O(1).
func (d *Dense) At(p, q, r, s int) (float64, bool) {
	if !d.inRange(p, q, r, s) {
		return 0, false
	}
	v := d.data[d.offset(p, q, r, s)]
	if math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

// Set writes the element (pq|rs). The value must be finite; marking an
// element missing again is not supported.
// Complexity: O(1).
func (d *Dense) Set(p, q, r, s int, v float64) error {
	if !d.inRange(p, q, r, s) {
		return fmt.Errorf("(%d %d|%d %d) outside [0,%d): %w", p, q, r, s, d.n, ErrIndexOutOfRange)
	}
	if !isFinite(v) {
		return fmt.Errorf("value %v at (%d %d|%d %d): %w", v, p, q, r, s, ErrNonFinite)
	}
	d.data[d.offset(p, q, r, s)] = v

	return nil
}

// Complete reports whether every element has been written.
// Complexity: O(n⁴).
func (d *Dense) Complete() bool {
	for _, v := range d.data {
		if math.IsNaN(v) {
			return false
		}
	}

	return true
}

// CheckSymmetry validates the chemist-convention permutational symmetries
//
//	(pq|rs) = (qp|rs) = (pq|sr) = (rs|pq)
//
// within the absolute tolerance tol. Comparisons involving a missing
// element are skipped, so partially filled tensors can still be checked.
// The first violation is reported with both index quadruples.
// Complexity: O(n⁴).
func (d *Dense) CheckSymmetry(tol float64) error {
	type perm struct{ p, q, r, s int }
	for p := 0; p < d.n; p++ {
		for q := 0; q < d.n; q++ {
			for r := 0; r < d.n; r++ {
				for s := 0; s < d.n; s++ {
					v, ok := d.At(p, q, r, s)
					if !ok {
						continue
					}
					images := [3]perm{
						{q, p, r, s}, // electron-one index swap
						{p, q, s, r}, // electron-two index swap
						{r, s, p, q}, // electron exchange
					}
					for _, im := range images {
						w, ok := d.At(im.p, im.q, im.r, im.s)
						if !ok {
							continue
						}
						if !scalar.EqualWithinAbs(v, w, tol) {
							return fmt.Errorf(
								"(%d %d|%d %d)=%g vs (%d %d|%d %d)=%g exceeds tol %g: %w",
								p, q, r, s, v, im.p, im.q, im.r, im.s, w, tol, ErrAsymmetric)
						}
					}
				}
			}
		}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
