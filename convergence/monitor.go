// Package convergence tracks iterative solver progress and decides when an
// energy sequence has converged.
//
// A Monitor keeps one Record per iteration and compares consecutive
// energies against absolute and relative tolerances. Missing measurements
// are passed as NaN; they never satisfy a tolerance, so a solver that
// cannot report a residual yet simply does not converge on that iteration.
package convergence

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dlpno/config"
)

// ErrInvalidCriteria is returned by NewMonitor when tolerances are not
// positive finite numbers or the iteration cap is negative.
var ErrInvalidCriteria = errors.New("convergence: invalid criteria")

// relativeFloor guards the relative check: previous energies at or below
// this magnitude fall back to the absolute test.
const relativeFloor = 1e-12

// Criteria holds the tolerances for declaring convergence.
type Criteria struct {
	// EnergyAbsTol bounds |E_n - E_{n-1}| and doubles as the residual
	// norm bound.
	EnergyAbsTol float64

	// EnergyRelTol bounds |E_n - E_{n-1}| / |E_{n-1}|.
	EnergyRelTol float64

	// MaxIterations caps the iteration count when positive; 0 disables
	// the cap.
	MaxIterations int
}

// DefaultCriteria returns the standard production tolerances.
func DefaultCriteria() Criteria {
	return Criteria{
		EnergyAbsTol:  config.DefaultEnergyAbsTol,
		EnergyRelTol:  config.DefaultEnergyRelTol,
		MaxIterations: config.DefaultMaxIterCCSD,
	}
}

// Validate checks that both tolerances are positive finite numbers and the
// iteration cap is non-negative.
func (c Criteria) Validate() error {
	if !(c.EnergyAbsTol > 0) || math.IsInf(c.EnergyAbsTol, 0) {
		return fmt.Errorf("energy abs tolerance %v: %w", c.EnergyAbsTol, ErrInvalidCriteria)
	}
	if !(c.EnergyRelTol > 0) || math.IsInf(c.EnergyRelTol, 0) {
		return fmt.Errorf("energy rel tolerance %v: %w", c.EnergyRelTol, ErrInvalidCriteria)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max iterations %d: %w", c.MaxIterations, ErrInvalidCriteria)
	}

	return nil
}

// Record captures one iteration: its measurements and whether the criteria
// were satisfied at that point. NaN marks a measurement the solver did not
// supply.
type Record struct {
	Iteration    int
	Energy       float64
	ResidualNorm float64
	Converged    bool
}

// Monitor accumulates per-iteration records and latches convergence.
// The zero value is not usable; construct with NewMonitor.
type Monitor struct {
	criteria  Criteria
	records   []Record
	converged bool
}

// NewMonitor validates the criteria and returns a fresh monitor.
func NewMonitor(c Criteria) (*Monitor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &Monitor{criteria: c}, nil
}

// Update appends one iteration and returns its record.
//
// Convergence needs a previous record to compare against, so the first
// update never converges. The energy test requires both the absolute and
// the relative tolerance to hold, except when the previous energy sits at
// or below the relative floor, where the absolute test decides alone. The
// residual test compares the norm against EnergyAbsTol. Non-finite
// measurements fail their test.
func (m *Monitor) Update(iteration int, energy, residualNorm float64) Record {
	converged := false
	if iteration > 0 && len(m.records) > 0 {
		prev := m.records[len(m.records)-1]

		energyConverged := false
		if isFinite(energy) && isFinite(prev.Energy) {
			diff := math.Abs(energy - prev.Energy)
			absMet := diff < m.criteria.EnergyAbsTol
			relMet := absMet
			if math.Abs(prev.Energy) > relativeFloor {
				relMet = diff/math.Abs(prev.Energy) < m.criteria.EnergyRelTol
			}
			energyConverged = absMet && relMet
		}

		residualConverged := isFinite(residualNorm) && residualNorm < m.criteria.EnergyAbsTol

		converged = energyConverged && residualConverged
	}

	rec := Record{
		Iteration:    iteration,
		Energy:       energy,
		ResidualNorm: residualNorm,
		Converged:    converged,
	}
	m.records = append(m.records, rec)
	if converged {
		m.converged = true
	}

	return rec
}

// Converged reports whether any update satisfied the criteria. It stays
// true once set.
func (m *Monitor) Converged() bool { return m.converged }

// Records returns a copy of all iteration records in insertion order.
func (m *Monitor) Records() []Record {
	return append([]Record(nil), m.records...)
}

// Exhausted reports whether the iteration cap has been reached without
// convergence. With no cap it is always false.
func (m *Monitor) Exhausted() bool {
	return m.criteria.MaxIterations > 0 &&
		len(m.records) >= m.criteria.MaxIterations &&
		!m.converged
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
