// Package localization is the adapter seam for occupied-orbital
// localization backends (Foster-Boys, Pipek-Mezey). Pair screening works on
// whatever orbital basis it is given, so this package only fixes the
// contract a backend has to satisfy; none is wired in yet.
package localization

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrUnknownMethod is returned when the method name is not one of
	// Methods().
	ErrUnknownMethod = errors.New("localization: unknown localization method")

	// ErrNotImplemented is returned for recognized methods until a
	// backend is attached.
	ErrNotImplemented = errors.New("localization: method not implemented")
)

var methods = [...]string{"boys", "pipek"}

// Methods returns the recognized localization scheme names. The slice is a
// fresh copy on every call.
func Methods() []string {
	out := make([]string, len(methods))
	copy(out, methods[:])

	return out
}

// Localize rotates the occupied block of coeff with the named scheme and
// returns the localized orbital order together with the rotated
// coefficient matrix. Method names are matched case-insensitively.
//
// Unknown names fail with ErrUnknownMethod; recognized names currently
// fail with ErrNotImplemented.
func Localize(coeff *mat.Dense, method string) ([]int, *mat.Dense, error) {
	name := strings.ToLower(method)
	known := false
	for _, m := range methods {
		if m == name {
			known = true
			break
		}
	}
	if !known {
		return nil, nil, fmt.Errorf("method %q (supported: %s): %w",
			method, strings.Join(Methods(), ", "), ErrUnknownMethod)
	}

	return nil, nil, fmt.Errorf("method %q: %w", name, ErrNotImplemented)
}
