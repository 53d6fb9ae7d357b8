package orbital_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dlpno/orbital"
)

type SpaceSuite struct {
	suite.Suite
}

func (s *SpaceSuite) TestNewSpace() {
	sp, err := orbital.NewSpace([]int{0, 1, 4}, []int{2, 3, 5})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 4}, sp.Occupied())
	require.Equal(s.T(), []int{2, 3, 5}, sp.Virtual())
	require.Equal(s.T(), 3, sp.NOcc())
	require.Equal(s.T(), 3, sp.NVirt())
	require.Equal(s.T(), 6, sp.NMO())
}

func (s *SpaceSuite) TestNegativeIndexRejected() {
	_, err := orbital.NewSpace([]int{0, -1}, []int{2})
	require.ErrorIs(s.T(), err, orbital.ErrIndexNegative)

	_, err = orbital.NewSpace([]int{0}, []int{-3})
	require.ErrorIs(s.T(), err, orbital.ErrIndexNegative)
}

func (s *SpaceSuite) TestDuplicateWithinPartitionRejected() {
	_, err := orbital.NewSpace([]int{0, 1, 1}, []int{2})
	require.ErrorIs(s.T(), err, orbital.ErrIndexDuplicated)

	_, err = orbital.NewSpace([]int{0}, []int{2, 2})
	require.ErrorIs(s.T(), err, orbital.ErrIndexDuplicated)
}

func (s *SpaceSuite) TestOverlapRejected() {
	_, err := orbital.NewSpace([]int{0, 1}, []int{1, 2})
	require.ErrorIs(s.T(), err, orbital.ErrSpacesOverlap)
}

func (s *SpaceSuite) TestEmptyPartitionsAllowed() {
	sp, err := orbital.NewSpace(nil, nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), sp.NMO())
	require.Empty(s.T(), sp.Occupied())
	require.Empty(s.T(), sp.Virtual())
}

func (s *SpaceSuite) TestInputsAndOutputsAreCopies() {
	occ := []int{0, 1}
	virt := []int{2, 3}
	sp, err := orbital.NewSpace(occ, virt)
	require.NoError(s.T(), err)

	// mutating the constructor arguments must not reach the space
	occ[0] = 99
	virt[1] = 99
	require.Equal(s.T(), []int{0, 1}, sp.Occupied())
	require.Equal(s.T(), []int{2, 3}, sp.Virtual())

	// mutating a returned slice must not reach the space either
	got := sp.Occupied()
	got[0] = -5
	require.Equal(s.T(), []int{0, 1}, sp.Occupied())
}

func (s *SpaceSuite) TestCanonical() {
	sp, err := orbital.Canonical(2, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1}, sp.Occupied())
	require.Equal(s.T(), []int{2, 3, 4}, sp.Virtual())
	require.Equal(s.T(), 5, sp.NMO())

	_, err = orbital.Canonical(-1, 3)
	require.ErrorIs(s.T(), err, orbital.ErrIndexNegative)
	_, err = orbital.Canonical(2, -3)
	require.ErrorIs(s.T(), err, orbital.ErrIndexNegative)
}

func TestSpaceSuite(t *testing.T) {
	suite.Run(t, new(SpaceSuite))
}
