// Package energy assembles final correlated energies from pipeline
// components and refuses to emit anything while the pipeline is
// incomplete.
//
// The guard is deliberate: a screening-only or partially converged run
// must never leak a number that looks like a total energy. Every stage of
// the pipeline owns one completion flag, and the getters check all of
// them before assembling.
package energy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dlpno/pairs"
)

var (
	// ErrIncompletePipeline is returned by energy getters while any
	// pipeline stage is still outstanding.
	ErrIncompletePipeline = errors.New("energy: pipeline incomplete")

	// ErrUnknownLevel is returned for a correlation level outside MP2,
	// CCSD, CCSDT.
	ErrUnknownLevel = errors.New("energy: unknown correlation level")

	// ErrUnknownStage is returned by MarkComplete for a stage outside the
	// pipeline.
	ErrUnknownStage = errors.New("energy: unknown pipeline stage")
)

// Stage enumerates the pipeline milestones that gate energy emission.
type Stage uint8

const (
	StageLocalization Stage = iota
	StagePairs
	StagePNO
	StageMP2
	StageCCSD
	StageTriples

	numStages
)

var stageNames = [numStages]string{
	StageLocalization: "localization_complete",
	StagePairs:        "pairs_detected",
	StagePNO:          "pno_constructed",
	StageMP2:          "mp2_converged",
	StageCCSD:         "ccsd_converged",
	StageTriples:      "triples_computed",
}

func (s Stage) String() string {
	if s < numStages {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// ParseStage maps a pipeline stage name back onto its Stage value.
// Unknown names yield ErrUnknownStage.
func ParseStage(name string) (Stage, error) {
	for st, n := range stageNames {
		if n == name {
			return Stage(st), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStage)
}

// Level selects the correlation treatment a getter refers to.
type Level uint8

const (
	MP2 Level = iota
	CCSD
	CCSDT
)

func (l Level) String() string {
	switch l {
	case MP2:
		return "MP2"
	case CCSD:
		return "CCSD"
	case CCSDT:
		return "CCSD(T)"
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}

// Assembler collects per-stage energy components and the screening result,
// then assembles totals once every stage reports complete.
//
// Setters only store values. Completion is a separate act: stages are
// marked through MarkComplete (or AttachPairs for screening), typically by
// the pipeline driver once it trusts the stage output.
type Assembler struct {
	scf     float64
	mp2     float64
	ccsd    float64
	triples float64

	survivors pairs.Set
	coverage  pairs.Coverage

	flags [numStages]bool
}

// NewAssembler starts an empty pipeline around the SCF reference energy in
// Hartree.
func NewAssembler(scfEnergy float64) *Assembler {
	return &Assembler{scf: scfEnergy}
}

// AttachPairs stores the screening survivors and marks the pair detection
// stage complete. The set is copied.
func (a *Assembler) AttachPairs(set pairs.Set, cov pairs.Coverage) {
	a.survivors = append(pairs.Set(nil), set...)
	a.coverage = cov
	a.flags[StagePairs] = true
}

// SetMP2Correlation stores the local MP2 correlation energy in Hartree.
func (a *Assembler) SetMP2Correlation(e float64) { a.mp2 = e }

// SetCCSDCorrelation stores the local CCSD correlation energy in Hartree.
func (a *Assembler) SetCCSDCorrelation(e float64) { a.ccsd = e }

// SetTriplesCorrection stores the perturbative (T) correction in Hartree.
func (a *Assembler) SetTriplesCorrection(e float64) { a.triples = e }

// MarkComplete records that one pipeline stage finished successfully.
func (a *Assembler) MarkComplete(st Stage) error {
	if st >= numStages {
		return fmt.Errorf("%v: %w", st, ErrUnknownStage)
	}
	a.flags[st] = true

	return nil
}

// Complete reports whether every pipeline stage has been marked.
func (a *Assembler) Complete() bool {
	for _, ok := range a.flags {
		if !ok {
			return false
		}
	}

	return true
}

// Flags returns the completion state keyed by stage name. The map is a
// fresh copy; printing it with %v yields a stable, sorted dump.
func (a *Assembler) Flags() map[string]bool {
	m := make(map[string]bool, numStages)
	for st := Stage(0); st < numStages; st++ {
		m[st.String()] = a.flags[st]
	}

	return m
}

// Pairs returns a copy of the attached screening survivors.
func (a *Assembler) Pairs() pairs.Set {
	return append(pairs.Set(nil), a.survivors...)
}

// Coverage returns the attached screening coverage.
func (a *Assembler) Coverage() pairs.Coverage { return a.coverage }

// incomplete builds the guard error with the current flag state.
func (a *Assembler) incomplete(what string) error {
	return fmt.Errorf("cannot retrieve %s, stages %v: %w", what, a.Flags(), ErrIncompletePipeline)
}

// MP2Energy returns SCF plus MP2 correlation once the pipeline is
// complete.
func (a *Assembler) MP2Energy() (float64, error) {
	if !a.Complete() {
		return 0, a.incomplete("MP2 energy")
	}

	return a.scf + a.mp2, nil
}

// CCSDEnergy returns SCF plus CCSD correlation once the pipeline is
// complete.
func (a *Assembler) CCSDEnergy() (float64, error) {
	if !a.Complete() {
		return 0, a.incomplete("CCSD energy")
	}

	return a.scf + a.ccsd, nil
}

// CCSDTEnergy returns SCF plus CCSD correlation plus the (T) correction
// once the pipeline is complete.
func (a *Assembler) CCSDTEnergy() (float64, error) {
	if !a.Complete() {
		return 0, a.incomplete("CCSD(T) energy")
	}

	return a.scf + a.ccsd + a.triples, nil
}

// CorrelationEnergy returns the correlation component at the requested
// level. The level is validated before the completeness guard, so an
// unknown level is reported even on an incomplete pipeline.
func (a *Assembler) CorrelationEnergy(level Level) (float64, error) {
	switch level {
	case MP2, CCSD, CCSDT:
	default:
		return 0, fmt.Errorf("%v: %w", level, ErrUnknownLevel)
	}
	if !a.Complete() {
		return 0, a.incomplete(level.String() + " correlation energy")
	}

	switch level {
	case MP2:
		return a.mp2, nil
	case CCSD:
		return a.ccsd, nil
	default:
		return a.ccsd + a.triples, nil
	}
}
