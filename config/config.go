package config

import (
	"errors"
	"fmt"
	"math"
)

// Version identifies the numerical contract carried by manifests and
// reference datasets.
const Version = "0.1.0"

// Default screening and truncation cutoffs, in Hartree where applicable.
const (
	// DefaultCutPairs is the pair screening cutoff on coupling strength.
	DefaultCutPairs = 1.0e-4

	// DefaultCutPNO is the pair natural orbital occupation cutoff.
	DefaultCutPNO = 1.0e-7

	// DefaultCutDO is the domain overlap cutoff.
	DefaultCutDO = 5.0e-3

	// DefaultCutResid is the amplitude residual cutoff.
	DefaultCutResid = 1.0e-7
)

// Default iterative solver controls.
const (
	DefaultMaxIterCCSD = 50
	DefaultDIISStart   = 2
	DefaultDIISKeep    = 8
)

// Default convergence tolerances.
const (
	DefaultEnergyAbsTol = 1.0e-6
	DefaultEnergyRelTol = 5.0e-7
)

// DefaultMaxExtrapolationPoints caps the threshold extrapolation ladder.
const DefaultMaxExtrapolationPoints = 3

// DefaultRandomSeed fixes pseudo-random choices for reproducible runs.
const DefaultRandomSeed int64 = 20250101

var (
	// ErrSequenceEmpty is returned when a truncation sequence has no
	// entries.
	ErrSequenceEmpty = errors.New("config: threshold sequence is empty")

	// ErrSequenceNotPositive is returned when a sequence entry is not a
	// positive finite number.
	ErrSequenceNotPositive = errors.New("config: threshold sequence entries must be positive")

	// ErrSequenceNotDecreasing is returned when consecutive sequence
	// entries fail to strictly decrease.
	ErrSequenceNotDecreasing = errors.New("config: threshold sequence must be strictly decreasing")

	// ErrNotPositive is returned when a tolerance or count that must be
	// positive is zero, negative, or non-finite.
	ErrNotPositive = errors.New("config: value must be positive")

	// ErrNegative is returned when a count that must be non-negative is
	// negative.
	ErrNegative = errors.New("config: value must be non-negative")
)

// DefaultPNOTauSequence returns the production PNO truncation ladder,
// tightest last. The slice is a fresh copy on every call.
func DefaultPNOTauSequence() []float64 {
	return []float64{1.0e-4, 7.0e-5, 5.0e-5, 3.5e-5, 2.5e-5}
}

// DefaultPairTauSequence returns the production pair truncation ladder.
// The slice is a fresh copy on every call.
func DefaultPairTauSequence() []float64 {
	return []float64{1.0e-6, 5.0e-7, 2.0e-7}
}

// ValidateTauSequence checks a truncation ladder: non-empty, every entry a
// positive finite number, and strictly decreasing.
func ValidateTauSequence(seq []float64) error {
	if len(seq) == 0 {
		return ErrSequenceEmpty
	}
	for k, v := range seq {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("entry %v at position %d: %w", v, k, ErrSequenceNotPositive)
		}
	}
	for k := 0; k+1 < len(seq); k++ {
		if seq[k] <= seq[k+1] {
			return fmt.Errorf("%v followed by %v at position %d: %w",
				seq[k], seq[k+1], k, ErrSequenceNotDecreasing)
		}
	}

	return nil
}

// PNOParameters bundles the truncation ladders and tolerances steering a
// PNO construction sweep.
type PNOParameters struct {
	PNOTauSequence         []float64
	PairTauSequence        []float64
	EnergyAbsTol           float64
	EnergyRelTol           float64
	MaxExtrapolationPoints int
}

// DefaultPNOParameters returns the production sweep parameters with fresh
// sequence copies.
func DefaultPNOParameters() PNOParameters {
	return PNOParameters{
		PNOTauSequence:         DefaultPNOTauSequence(),
		PairTauSequence:        DefaultPairTauSequence(),
		EnergyAbsTol:           DefaultEnergyAbsTol,
		EnergyRelTol:           DefaultEnergyRelTol,
		MaxExtrapolationPoints: DefaultMaxExtrapolationPoints,
	}
}

// Validate checks both ladders and all tolerances.
func (p PNOParameters) Validate() error {
	if err := ValidateTauSequence(p.PNOTauSequence); err != nil {
		return fmt.Errorf("pno tau sequence: %w", err)
	}
	if err := ValidateTauSequence(p.PairTauSequence); err != nil {
		return fmt.Errorf("pair tau sequence: %w", err)
	}
	if !(p.EnergyAbsTol > 0) || math.IsInf(p.EnergyAbsTol, 0) {
		return fmt.Errorf("energy abs tolerance %v: %w", p.EnergyAbsTol, ErrNotPositive)
	}
	if !(p.EnergyRelTol > 0) || math.IsInf(p.EnergyRelTol, 0) {
		return fmt.Errorf("energy rel tolerance %v: %w", p.EnergyRelTol, ErrNotPositive)
	}
	if p.MaxExtrapolationPoints < 1 {
		return fmt.Errorf("max extrapolation points %d: %w", p.MaxExtrapolationPoints, ErrNotPositive)
	}

	return nil
}
