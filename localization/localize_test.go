package localization_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dlpno/localization"
)

type LocalizeSuite struct {
	suite.Suite
}

func (s *LocalizeSuite) TestMethodsList() {
	require.Equal(s.T(), []string{"boys", "pipek"}, localization.Methods())
}

func (s *LocalizeSuite) TestMethodsReturnsFreshCopy() {
	first := localization.Methods()
	first[0] = "mangled"
	require.Equal(s.T(), []string{"boys", "pipek"}, localization.Methods())
}

func (s *LocalizeSuite) TestUnknownMethod() {
	coeff := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	_, _, err := localization.Localize(coeff, "cholesky")
	require.ErrorIs(s.T(), err, localization.ErrUnknownMethod)
	require.NotErrorIs(s.T(), err, localization.ErrNotImplemented)
}

func (s *LocalizeSuite) TestRecognizedMethodsNotImplemented() {
	coeff := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	for _, name := range []string{"boys", "Boys", "PIPEK", "pipek"} {
		order, rotated, err := localization.Localize(coeff, name)
		require.ErrorIs(s.T(), err, localization.ErrNotImplemented, name)
		require.NotErrorIs(s.T(), err, localization.ErrUnknownMethod, name)
		require.Nil(s.T(), order)
		require.Nil(s.T(), rotated)
	}
}

func TestLocalizeSuite(t *testing.T) {
	suite.Run(t, new(LocalizeSuite))
}
