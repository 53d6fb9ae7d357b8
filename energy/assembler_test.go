package energy_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dlpno/energy"
	"github.com/katalvlaran/dlpno/pairs"
)

type AssemblerSuite struct {
	suite.Suite
}

// markAll completes every pipeline stage.
func markAll(t *testing.T, a *energy.Assembler) {
	t.Helper()
	for _, st := range []energy.Stage{
		energy.StageLocalization,
		energy.StagePairs,
		energy.StagePNO,
		energy.StageMP2,
		energy.StageCCSD,
		energy.StageTriples,
	} {
		require.NoError(t, a.MarkComplete(st))
	}
}

func (s *AssemblerSuite) TestStageNames() {
	require.Equal(s.T(), "localization_complete", energy.StageLocalization.String())
	require.Equal(s.T(), "pairs_detected", energy.StagePairs.String())
	require.Equal(s.T(), "pno_constructed", energy.StagePNO.String())
	require.Equal(s.T(), "mp2_converged", energy.StageMP2.String())
	require.Equal(s.T(), "ccsd_converged", energy.StageCCSD.String())
	require.Equal(s.T(), "triples_computed", energy.StageTriples.String())
}

func (s *AssemblerSuite) TestLevelNames() {
	require.Equal(s.T(), "MP2", energy.MP2.String())
	require.Equal(s.T(), "CCSD", energy.CCSD.String())
	require.Equal(s.T(), "CCSD(T)", energy.CCSDT.String())
}

func (s *AssemblerSuite) TestFreshAssemblerRefusesEverything() {
	a := energy.NewAssembler(-76.0)
	require.False(s.T(), a.Complete())

	_, err := a.MP2Energy()
	require.ErrorIs(s.T(), err, energy.ErrIncompletePipeline)
	_, err = a.CCSDEnergy()
	require.ErrorIs(s.T(), err, energy.ErrIncompletePipeline)
	_, err = a.CCSDTEnergy()
	require.ErrorIs(s.T(), err, energy.ErrIncompletePipeline)
	_, err = a.CorrelationEnergy(energy.MP2)
	require.ErrorIs(s.T(), err, energy.ErrIncompletePipeline)
}

func (s *AssemblerSuite) TestSettersDoNotComplete() {
	a := energy.NewAssembler(-76.0)
	a.SetMP2Correlation(-0.2)
	a.SetCCSDCorrelation(-0.25)
	a.SetTriplesCorrection(-0.01)

	require.False(s.T(), a.Complete())
	_, err := a.MP2Energy()
	require.ErrorIs(s.T(), err, energy.ErrIncompletePipeline)
}

func (s *AssemblerSuite) TestOneMissingStageStillBlocks() {
	a := energy.NewAssembler(-76.0)
	for _, st := range []energy.Stage{
		energy.StageLocalization,
		energy.StagePairs,
		energy.StagePNO,
		energy.StageMP2,
		energy.StageCCSD,
	} {
		require.NoError(s.T(), a.MarkComplete(st))
	}

	require.False(s.T(), a.Complete())
	_, err := a.CCSDTEnergy()
	require.ErrorIs(s.T(), err, energy.ErrIncompletePipeline)
}

func (s *AssemblerSuite) TestCompletePipelineAssembles() {
	a := energy.NewAssembler(-76.0)
	a.SetMP2Correlation(-0.2)
	a.SetCCSDCorrelation(-0.25)
	a.SetTriplesCorrection(-0.01)
	markAll(s.T(), a)
	require.True(s.T(), a.Complete())

	mp2, err := a.MP2Energy()
	require.NoError(s.T(), err)
	require.InDelta(s.T(), -76.2, mp2, 1e-12)

	ccsd, err := a.CCSDEnergy()
	require.NoError(s.T(), err)
	require.InDelta(s.T(), -76.25, ccsd, 1e-12)

	ccsdt, err := a.CCSDTEnergy()
	require.NoError(s.T(), err)
	require.InDelta(s.T(), -76.26, ccsdt, 1e-12)

	corr, err := a.CorrelationEnergy(energy.CCSDT)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), -0.26, corr, 1e-12)
}

func (s *AssemblerSuite) TestAttachPairsMarksDetectionAndCopies() {
	a := energy.NewAssembler(0)
	set := pairs.Set{{I: 0, J: 1}, {I: 0, J: 2}}
	cov := pairs.Coverage{Retained: 2, Candidates: 3, Fraction: 2.0 / 3.0}

	a.AttachPairs(set, cov)
	require.True(s.T(), a.Flags()["pairs_detected"])
	require.Equal(s.T(), cov, a.Coverage())

	// the assembler owns its copy
	set[0] = pairs.Pair{I: 7, J: 8}
	require.Equal(s.T(), pairs.Set{{I: 0, J: 1}, {I: 0, J: 2}}, a.Pairs())

	got := a.Pairs()
	got[0] = pairs.Pair{I: 9, J: 9}
	require.Equal(s.T(), pairs.Set{{I: 0, J: 1}, {I: 0, J: 2}}, a.Pairs())
}

func (s *AssemblerSuite) TestUnknownLevelBeatsIncompleteGuard() {
	a := energy.NewAssembler(0)

	_, err := a.CorrelationEnergy(energy.Level(42))
	require.ErrorIs(s.T(), err, energy.ErrUnknownLevel)
	require.NotErrorIs(s.T(), err, energy.ErrIncompletePipeline)
}

func (s *AssemblerSuite) TestMarkCompleteRejectsUnknownStage() {
	a := energy.NewAssembler(0)
	require.ErrorIs(s.T(), a.MarkComplete(energy.Stage(99)), energy.ErrUnknownStage)
}

func (s *AssemblerSuite) TestParseStageRoundTrip() {
	stages := []energy.Stage{
		energy.StageLocalization, energy.StagePairs, energy.StagePNO,
		energy.StageMP2, energy.StageCCSD, energy.StageTriples,
	}
	for _, st := range stages {
		got, err := energy.ParseStage(st.String())
		require.NoError(s.T(), err)
		require.Equal(s.T(), st, got)
	}

	_, err := energy.ParseStage("pairs detected")
	require.ErrorIs(s.T(), err, energy.ErrUnknownStage)
}

func (s *AssemblerSuite) TestFlagsSnapshot() {
	a := energy.NewAssembler(0)
	flags := a.Flags()
	require.Len(s.T(), flags, 6)
	for name, ok := range flags {
		require.False(s.T(), ok, name)
	}

	// mutating the snapshot must not touch the assembler
	flags["pairs_detected"] = true
	require.False(s.T(), a.Flags()["pairs_detected"])
}

func TestAssemblerSuite(t *testing.T) {
	suite.Run(t, new(AssemblerSuite))
}
