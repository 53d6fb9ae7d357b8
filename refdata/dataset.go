// Package refdata carries regression reference datasets for the pair
// coupling evaluator. A dataset is self-contained: each molecule record
// stores its inputs (orbital energies and the full two-electron tensor)
// next to the expected outputs (per-pair coupling strengths, the signed
// pair-energy total, and a bitwise fingerprint), so verification needs
// no external electronic-structure stack.
package refdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/dlpno/integral"
)

var (
	// ErrEmptyDataset is returned when a dataset holds no molecules.
	ErrEmptyDataset = errors.New("refdata: dataset holds no molecules")

	// ErrBadRecord is returned when a molecule record is internally
	// inconsistent, for example when the tensor size does not match the
	// orbital count.
	ErrBadRecord = errors.New("refdata: malformed molecule record")

	// ErrMismatch is returned by Verify when recomputed values disagree
	// with the stored reference.
	ErrMismatch = errors.New("refdata: reference mismatch")
)

// PairValue is one stored coupling strength C(i, j).
type PairValue struct {
	I     int     `json:"i"`
	J     int     `json:"j"`
	Value float64 `json:"value"`
}

// Molecule is one regression record.
type Molecule struct {
	ID         string      `json:"molecule_id"`
	Basis      string      `json:"basis"`
	NOcc       int         `json:"n_occ"`
	Energies   []float64   `json:"orbital_energies"`
	Integrals  []float64   `json:"integrals"`
	CValues    []PairValue `json:"c_values"`
	ECorrTotal float64     `json:"e_corr_total"`
	Hash       string      `json:"regression_hash"`
}

// Dataset is a collection of molecule records.
type Dataset struct {
	Molecules []Molecule `json:"molecules"`
}

// Load reads a dataset from a JSON file.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if len(d.Molecules) == 0 {
		return nil, ErrEmptyDataset
	}

	return &d, nil
}

// Write encodes the dataset as indented JSON.
func (d *Dataset) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	return nil
}

// validate checks the internal consistency of the record shape. The
// physical plausibility of the numbers is the coupling package's concern.
func (m *Molecule) validate() error {
	if m.ID == "" {
		return fmt.Errorf("empty molecule id: %w", ErrBadRecord)
	}
	n := len(m.Energies)
	if n == 0 {
		return fmt.Errorf("molecule %s: no orbital energies: %w", m.ID, ErrBadRecord)
	}
	if want := n * n * n * n; len(m.Integrals) != want {
		return fmt.Errorf("molecule %s: %d tensor elements for %d orbitals, want %d: %w",
			m.ID, len(m.Integrals), n, want, ErrBadRecord)
	}
	if m.NOcc < 0 || m.NOcc > n {
		return fmt.Errorf("molecule %s: n_occ %d outside [0, %d]: %w", m.ID, m.NOcc, n, ErrBadRecord)
	}

	return nil
}

// Tensor rebuilds the stored two-electron tensor.
func (m *Molecule) Tensor() (*integral.Dense, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	t, err := integral.NewDenseFromSlice(len(m.Energies), m.Integrals)
	if err != nil {
		return nil, fmt.Errorf("molecule %s: %w", m.ID, err)
	}

	return t, nil
}
