package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dlpno/config"
)

type RuntimeSuite struct {
	suite.Suite
}

func (s *RuntimeSuite) TestDefaults() {
	c := config.New()

	require.Equal(s.T(), config.DefaultCutPairs, c.ScreeningThreshold())
	require.Equal(s.T(), 1, c.Workers())
	require.Equal(s.T(), config.DefaultCutPNO, c.PNOCut())
	require.Equal(s.T(), config.DefaultCutDO, c.PNODomainCut())
	require.Equal(s.T(), config.DefaultCutResid, c.ResidualCut())
	require.Equal(s.T(), config.DefaultMaxIterCCSD, c.MaxIterCCSD())
	require.Equal(s.T(), config.DefaultDIISStart, c.DIISStart())
	require.Equal(s.T(), config.DefaultDIISKeep, c.DIISKeep())
	require.Equal(s.T(), config.DefaultEnergyAbsTol, c.EnergyAbsTol())
	require.Equal(s.T(), config.DefaultEnergyRelTol, c.EnergyRelTol())
	require.Equal(s.T(), config.DefaultRandomSeed, c.RandomSeed())
	require.Equal(s.T(), "info", c.LogLevel())
	require.False(s.T(), c.LogJSON())

	require.NoError(s.T(), c.Validate())
}

func (s *RuntimeSuite) TestDefaultThresholdsAssembly() {
	c := config.New()

	got, err := c.Thresholds()
	require.NoError(s.T(), err)
	require.Equal(s.T(), config.DefaultThresholds(), got)
}

func (s *RuntimeSuite) TestFromFileOverrides() {
	c := config.New()
	require.NoError(s.T(), c.FromFile(filepath.Join("testdata", "config.yaml")))

	require.Equal(s.T(), 2.0e-4, c.ScreeningThreshold())
	require.Equal(s.T(), 4, c.Workers())
	require.Equal(s.T(), 80, c.MaxIterCCSD())
	require.Equal(s.T(), "debug", c.LogLevel())
	require.True(s.T(), c.LogJSON())

	seq, err := c.PNOTauSequence()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1.0e-3, 5.0e-4, 1.0e-4}, seq)

	// Keys absent from the file keep their defaults.
	require.Equal(s.T(), config.DefaultCutPNO, c.PNOCut())
	require.Equal(s.T(), config.DefaultRandomSeed, c.RandomSeed())
	pair, err := c.PairTauSequence()
	require.NoError(s.T(), err)
	require.Equal(s.T(), config.DefaultPairTauSequence(), pair)

	require.NoError(s.T(), c.Validate())

	got, err := c.Thresholds()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0e-4, got.CutPairs)
	require.Equal(s.T(), 80, got.MaxIterCCSD)
	require.Equal(s.T(), []float64{1.0e-3, 5.0e-4, 1.0e-4}, got.PNOTauSequence)
}

func (s *RuntimeSuite) TestFromFileMissing() {
	c := config.New()
	require.Error(s.T(), c.FromFile(filepath.Join("testdata", "no-such-config.yaml")))
}

func (s *RuntimeSuite) TestEnvironmentOverride() {
	s.T().Setenv("DLPNO_SCREENING_THRESHOLD", "0.002")
	s.T().Setenv("DLPNO_SOLVER_MAX_ITER_CCSD", "25")

	c := config.New()
	require.Equal(s.T(), 0.002, c.ScreeningThreshold())
	require.Equal(s.T(), 25, c.MaxIterCCSD())
}

func (s *RuntimeSuite) TestEnvironmentBeatsFile() {
	s.T().Setenv("DLPNO_SCREENING_WORKERS", "16")

	c := config.New()
	require.NoError(s.T(), c.FromFile(filepath.Join("testdata", "config.yaml")))
	require.Equal(s.T(), 16, c.Workers())
}

func (s *RuntimeSuite) TestValidateRejectsNegativeWorkers() {
	s.T().Setenv("DLPNO_SCREENING_WORKERS", "-2")

	c := config.New()
	require.ErrorIs(s.T(), c.Validate(), config.ErrNegative)
}

func (s *RuntimeSuite) TestValidateRejectsBadThreshold() {
	s.T().Setenv("DLPNO_SCREENING_THRESHOLD", "-1")

	c := config.New()
	require.ErrorIs(s.T(), c.Validate(), config.ErrNotPositive)

	_, err := c.Thresholds()
	require.ErrorIs(s.T(), err, config.ErrNotPositive)
}

func TestRuntimeSuite(t *testing.T) {
	suite.Run(t, new(RuntimeSuite))
}
