package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingKey is returned when a thresholds document lacks one of the
// required keys.
var ErrMissingKey = errors.New("config: missing threshold key")

// Thresholds is the flat numerical contract of one calculation. Its tags
// carry the canonical key names used by threshold documents, manifests,
// and log metadata.
type Thresholds struct {
	CutPairs        float64   `yaml:"T_CutPairs" json:"T_CutPairs"`
	CutPNO          float64   `yaml:"T_CutPNO" json:"T_CutPNO"`
	CutDO           float64   `yaml:"T_CutDO" json:"T_CutDO"`
	CutResid        float64   `yaml:"T_CutResid" json:"T_CutResid"`
	MaxIterCCSD     int       `yaml:"MaxIter_CCSD" json:"MaxIter_CCSD"`
	DIISStart       int       `yaml:"DIIS_Start" json:"DIIS_Start"`
	DIISKeep        int       `yaml:"DIIS_Keep" json:"DIIS_Keep"`
	PNOTauSequence  []float64 `yaml:"PNO_TAU_SEQUENCE" json:"PNO_TAU_SEQUENCE"`
	PairTauSequence []float64 `yaml:"PAIR_TAU_SEQUENCE" json:"PAIR_TAU_SEQUENCE"`
	EnergyAbsTol    float64   `yaml:"ENERGY_ABS_TOL" json:"ENERGY_ABS_TOL"`
	EnergyRelTol    float64   `yaml:"ENERGY_REL_TOL" json:"ENERGY_REL_TOL"`
	RandomSeed      int64     `yaml:"DEFAULT_RANDOM_SEED" json:"DEFAULT_RANDOM_SEED"`
}

// DefaultThresholds returns the production contract.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CutPairs:        DefaultCutPairs,
		CutPNO:          DefaultCutPNO,
		CutDO:           DefaultCutDO,
		CutResid:        DefaultCutResid,
		MaxIterCCSD:     DefaultMaxIterCCSD,
		DIISStart:       DefaultDIISStart,
		DIISKeep:        DefaultDIISKeep,
		PNOTauSequence:  DefaultPNOTauSequence(),
		PairTauSequence: DefaultPairTauSequence(),
		EnergyAbsTol:    DefaultEnergyAbsTol,
		EnergyRelTol:    DefaultEnergyRelTol,
		RandomSeed:      DefaultRandomSeed,
	}
}

// Validate enforces the contract: scalar cutoffs and tolerances positive
// and finite, counters non-negative, sequences non-empty and strictly
// decreasing.
func (t Thresholds) Validate() error {
	scalars := []struct {
		name string
		v    float64
	}{
		{"T_CutPairs", t.CutPairs},
		{"T_CutPNO", t.CutPNO},
		{"T_CutDO", t.CutDO},
		{"T_CutResid", t.CutResid},
		{"ENERGY_ABS_TOL", t.EnergyAbsTol},
		{"ENERGY_REL_TOL", t.EnergyRelTol},
	}
	for _, s := range scalars {
		if !(s.v > 0) || math.IsInf(s.v, 0) {
			return fmt.Errorf("%s = %v: %w", s.name, s.v, ErrNotPositive)
		}
	}

	counters := []struct {
		name string
		v    int64
	}{
		{"MaxIter_CCSD", int64(t.MaxIterCCSD)},
		{"DIIS_Start", int64(t.DIISStart)},
		{"DIIS_Keep", int64(t.DIISKeep)},
		{"DEFAULT_RANDOM_SEED", t.RandomSeed},
	}
	for _, c := range counters {
		if c.v < 0 {
			return fmt.Errorf("%s = %d: %w", c.name, c.v, ErrNegative)
		}
	}

	if err := ValidateTauSequence(t.PNOTauSequence); err != nil {
		return fmt.Errorf("PNO_TAU_SEQUENCE: %w", err)
	}
	if err := ValidateTauSequence(t.PairTauSequence); err != nil {
		return fmt.Errorf("PAIR_TAU_SEQUENCE: %w", err)
	}

	return nil
}

// Threshold documents nest every key under a small value/description
// record so the numbers stay self-describing in review diffs.
type scalarDoc struct {
	Value       float64 `yaml:"value"`
	Description string  `yaml:"description,omitempty"`
}

type counterDoc struct {
	Value       int64  `yaml:"value"`
	Description string `yaml:"description,omitempty"`
}

type sequenceDoc struct {
	Values      []float64 `yaml:"values"`
	Description string    `yaml:"description,omitempty"`
}

// thresholdsDoc fixes the document key order for deterministic output.
type thresholdsDoc struct {
	CutPairs        scalarDoc   `yaml:"T_CutPairs"`
	CutPNO          scalarDoc   `yaml:"T_CutPNO"`
	CutDO           scalarDoc   `yaml:"T_CutDO"`
	CutResid        scalarDoc   `yaml:"T_CutResid"`
	MaxIterCCSD     counterDoc  `yaml:"MaxIter_CCSD"`
	DIISStart       counterDoc  `yaml:"DIIS_Start"`
	DIISKeep        counterDoc  `yaml:"DIIS_Keep"`
	PNOTauSequence  sequenceDoc `yaml:"PNO_TAU_SEQUENCE"`
	PairTauSequence sequenceDoc `yaml:"PAIR_TAU_SEQUENCE"`
	EnergyAbsTol    scalarDoc   `yaml:"ENERGY_ABS_TOL"`
	EnergyRelTol    scalarDoc   `yaml:"ENERGY_REL_TOL"`
	RandomSeed      counterDoc  `yaml:"DEFAULT_RANDOM_SEED"`
}

// ParseThresholds decodes a nested thresholds document, requires every
// contract key, flattens it, and validates the result. Unknown extra keys
// are tolerated.
func ParseThresholds(data []byte) (Thresholds, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Thresholds{}, fmt.Errorf("parse thresholds document: %w", err)
	}

	var t Thresholds

	floats := []struct {
		key string
		dst *float64
	}{
		{"T_CutPairs", &t.CutPairs},
		{"T_CutPNO", &t.CutPNO},
		{"T_CutDO", &t.CutDO},
		{"T_CutResid", &t.CutResid},
		{"ENERGY_ABS_TOL", &t.EnergyAbsTol},
		{"ENERGY_REL_TOL", &t.EnergyRelTol},
	}
	for _, f := range floats {
		node, ok := doc[f.key]
		if !ok {
			return Thresholds{}, fmt.Errorf("%s: %w", f.key, ErrMissingKey)
		}
		var sd scalarDoc
		if err := node.Decode(&sd); err != nil {
			return Thresholds{}, fmt.Errorf("decode %s: %w", f.key, err)
		}
		*f.dst = sd.Value
	}

	counters := []struct {
		key string
		set func(int64)
	}{
		{"MaxIter_CCSD", func(v int64) { t.MaxIterCCSD = int(v) }},
		{"DIIS_Start", func(v int64) { t.DIISStart = int(v) }},
		{"DIIS_Keep", func(v int64) { t.DIISKeep = int(v) }},
		{"DEFAULT_RANDOM_SEED", func(v int64) { t.RandomSeed = v }},
	}
	for _, c := range counters {
		node, ok := doc[c.key]
		if !ok {
			return Thresholds{}, fmt.Errorf("%s: %w", c.key, ErrMissingKey)
		}
		var cd counterDoc
		if err := node.Decode(&cd); err != nil {
			return Thresholds{}, fmt.Errorf("decode %s: %w", c.key, err)
		}
		c.set(cd.Value)
	}

	sequences := []struct {
		key string
		dst *[]float64
	}{
		{"PNO_TAU_SEQUENCE", &t.PNOTauSequence},
		{"PAIR_TAU_SEQUENCE", &t.PairTauSequence},
	}
	for _, sq := range sequences {
		node, ok := doc[sq.key]
		if !ok {
			return Thresholds{}, fmt.Errorf("%s: %w", sq.key, ErrMissingKey)
		}
		var qd sequenceDoc
		if err := node.Decode(&qd); err != nil {
			return Thresholds{}, fmt.Errorf("decode %s: %w", sq.key, err)
		}
		*sq.dst = qd.Values
	}

	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}

	return t, nil
}

// LoadThresholds reads and parses a thresholds document from disk.
func LoadThresholds(path string) (Thresholds, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("read thresholds: %w", err)
	}

	return ParseThresholds(raw)
}

// WriteThresholds validates t and writes it in the nested document format
// with the canonical descriptions.
func WriteThresholds(path string, t Thresholds) error {
	if err := t.Validate(); err != nil {
		return err
	}

	doc := thresholdsDoc{
		CutPairs:        scalarDoc{t.CutPairs, "pair screening cutoff on coupling strength (Hartree)"},
		CutPNO:          scalarDoc{t.CutPNO, "pair natural orbital occupation cutoff"},
		CutDO:           scalarDoc{t.CutDO, "domain overlap cutoff"},
		CutResid:        scalarDoc{t.CutResid, "amplitude residual cutoff"},
		MaxIterCCSD:     counterDoc{int64(t.MaxIterCCSD), "iteration cap for the amplitude solver"},
		DIISStart:       counterDoc{int64(t.DIISStart), "first iteration eligible for DIIS extrapolation"},
		DIISKeep:        counterDoc{int64(t.DIISKeep), "DIIS history depth"},
		PNOTauSequence:  sequenceDoc{t.PNOTauSequence, "PNO truncation ladder, strictly decreasing"},
		PairTauSequence: sequenceDoc{t.PairTauSequence, "pair truncation ladder, strictly decreasing"},
		EnergyAbsTol:    scalarDoc{t.EnergyAbsTol, "absolute energy convergence tolerance (Hartree)"},
		EnergyRelTol:    scalarDoc{t.EnergyRelTol, "relative energy convergence tolerance"},
		RandomSeed:      counterDoc{t.RandomSeed, "seed for reproducible pseudo-random choices"},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode thresholds: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
