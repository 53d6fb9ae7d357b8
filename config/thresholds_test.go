package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dlpno/config"
)

type ThresholdsSuite struct {
	suite.Suite
}

func (s *ThresholdsSuite) contractDocument() []byte {
	data, err := os.ReadFile(filepath.Join("testdata", "thresholds.yaml"))
	require.NoError(s.T(), err)

	return data
}

func (s *ThresholdsSuite) TestDefaultsValidate() {
	require.NoError(s.T(), config.DefaultThresholds().Validate())
}

func (s *ThresholdsSuite) TestValidateRejectsBadScalars() {
	t := config.DefaultThresholds()
	t.CutPairs = 0
	require.ErrorIs(s.T(), t.Validate(), config.ErrNotPositive)

	t = config.DefaultThresholds()
	t.CutDO = -5e-3
	require.ErrorIs(s.T(), t.Validate(), config.ErrNotPositive)

	t = config.DefaultThresholds()
	t.EnergyAbsTol = math.NaN()
	require.ErrorIs(s.T(), t.Validate(), config.ErrNotPositive)

	t = config.DefaultThresholds()
	t.EnergyRelTol = math.Inf(1)
	require.ErrorIs(s.T(), t.Validate(), config.ErrNotPositive)
}

func (s *ThresholdsSuite) TestValidateRejectsBadCounters() {
	t := config.DefaultThresholds()
	t.MaxIterCCSD = -1
	require.ErrorIs(s.T(), t.Validate(), config.ErrNegative)

	t = config.DefaultThresholds()
	t.RandomSeed = -7
	require.ErrorIs(s.T(), t.Validate(), config.ErrNegative)

	t = config.DefaultThresholds()
	t.DIISStart = 0
	require.NoError(s.T(), t.Validate(), "zero counters are legal")
}

func (s *ThresholdsSuite) TestValidateRejectsBadSequences() {
	t := config.DefaultThresholds()
	t.PNOTauSequence = nil
	require.ErrorIs(s.T(), t.Validate(), config.ErrSequenceEmpty)

	t = config.DefaultThresholds()
	t.PairTauSequence = []float64{1e-6, 1e-6}
	require.ErrorIs(s.T(), t.Validate(), config.ErrSequenceNotDecreasing)
}

func (s *ThresholdsSuite) TestLoadShippedDocumentMatchesDefaults() {
	got, err := config.LoadThresholds(filepath.Join("testdata", "thresholds.yaml"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), config.DefaultThresholds(), got)
}

func (s *ThresholdsSuite) TestParseRejectsMissingKey() {
	var doc map[string]any
	require.NoError(s.T(), yaml.Unmarshal(s.contractDocument(), &doc))
	delete(doc, "DIIS_Keep")
	trimmed, err := yaml.Marshal(doc)
	require.NoError(s.T(), err)

	_, err = config.ParseThresholds(trimmed)
	require.ErrorIs(s.T(), err, config.ErrMissingKey)
	require.ErrorContains(s.T(), err, "DIIS_Keep")
}

func (s *ThresholdsSuite) TestParseRejectsInvalidValues() {
	var doc map[string]any
	require.NoError(s.T(), yaml.Unmarshal(s.contractDocument(), &doc))
	doc["T_CutPNO"] = map[string]any{"value": 0.0}
	mutated, err := yaml.Marshal(doc)
	require.NoError(s.T(), err)

	_, err = config.ParseThresholds(mutated)
	require.ErrorIs(s.T(), err, config.ErrNotPositive)
}

func (s *ThresholdsSuite) TestParseToleratesExtraKeys() {
	var doc map[string]any
	require.NoError(s.T(), yaml.Unmarshal(s.contractDocument(), &doc))
	doc["FUTURE_KNOB"] = map[string]any{"value": 1.0}
	extended, err := yaml.Marshal(doc)
	require.NoError(s.T(), err)

	got, err := config.ParseThresholds(extended)
	require.NoError(s.T(), err)
	require.Equal(s.T(), config.DefaultThresholds(), got)
}

func (s *ThresholdsSuite) TestWriteLoadRoundTrip() {
	t := config.DefaultThresholds()
	t.CutPairs = 3.0e-5
	t.MaxIterCCSD = 120
	t.PNOTauSequence = []float64{1.0e-3, 1.0e-4}

	path := filepath.Join(s.T().TempDir(), "thresholds.yaml")
	require.NoError(s.T(), config.WriteThresholds(path, t))

	got, err := config.LoadThresholds(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), t, got)
}

func (s *ThresholdsSuite) TestWriteRejectsInvalid() {
	t := config.DefaultThresholds()
	t.EnergyRelTol = -1

	path := filepath.Join(s.T().TempDir(), "thresholds.yaml")
	err := config.WriteThresholds(path, t)
	require.ErrorIs(s.T(), err, config.ErrNotPositive)
	require.NoFileExists(s.T(), path)
}

// TestShippedDocumentContract checks the committed document the way a
// release gate would: every required key present, scalars positive,
// counters non-negative integers, ladders non-empty and strictly
// decreasing.
func (s *ThresholdsSuite) TestShippedDocumentContract() {
	var doc map[string]map[string]any
	require.NoError(s.T(), yaml.Unmarshal(s.contractDocument(), &doc))

	required := []string{
		"T_CutPairs", "T_CutPNO", "T_CutDO", "T_CutResid",
		"MaxIter_CCSD", "DIIS_Start", "DIIS_Keep",
		"PNO_TAU_SEQUENCE", "PAIR_TAU_SEQUENCE",
		"ENERGY_ABS_TOL", "ENERGY_REL_TOL", "DEFAULT_RANDOM_SEED",
	}
	for _, key := range required {
		require.Contains(s.T(), doc, key)
	}

	scalars := []string{"T_CutPairs", "T_CutPNO", "T_CutDO", "T_CutResid", "ENERGY_ABS_TOL", "ENERGY_REL_TOL"}
	for _, key := range scalars {
		v, ok := doc[key]["value"].(float64)
		require.True(s.T(), ok, "%s must carry a float value", key)
		require.Positive(s.T(), v, key)
	}

	counters := []string{"MaxIter_CCSD", "DIIS_Start", "DIIS_Keep", "DEFAULT_RANDOM_SEED"}
	for _, key := range counters {
		v, ok := doc[key]["value"].(int)
		require.True(s.T(), ok, "%s must carry an integer value", key)
		require.GreaterOrEqual(s.T(), v, 0, key)
	}

	sequences := []string{"PNO_TAU_SEQUENCE", "PAIR_TAU_SEQUENCE"}
	for _, key := range sequences {
		raw, ok := doc[key]["values"].([]any)
		require.True(s.T(), ok, "%s must carry a values list", key)
		require.NotEmpty(s.T(), raw, key)

		prev := math.Inf(1)
		for _, item := range raw {
			v, ok := item.(float64)
			require.True(s.T(), ok, "%s entries must be floats", key)
			require.Less(s.T(), v, prev, "%s must be strictly decreasing", key)
			prev = v
		}
	}
}

func TestThresholdsSuite(t *testing.T) {
	suite.Run(t, new(ThresholdsSuite))
}
