package tds_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/simplicia/tds"
)

// TDSSuite drives a TDS of maximal dimension 2 grown one dimension at a time.
type TDSSuite struct {
	suite.Suite
	t       *tds.TDS
	inf     tds.VertexID
	a, b, c tds.VertexID
}

func (s *TDSSuite) SetupTest() {
	s.t = tds.New(2)
	s.inf = s.t.InsertIncreaseDimension(tds.NoVertex)
	s.a = s.t.InsertIncreaseDimension(s.inf)
	s.b = s.t.InsertIncreaseDimension(s.inf)
	s.c = s.t.InsertIncreaseDimension(s.inf)
}

// finite returns the only cell not incident to the vertex at infinity.
func (s *TDSSuite) finite() tds.CellID {
	for _, c := range s.t.FullCells() {
		if !s.t.HasVertex(c, s.inf) {
			return c
		}
	}
	s.FailNow("no finite cell")

	return tds.NoCell
}

func (s *TDSSuite) TestGrownStructure() {
	require.Equal(s.T(), 2, s.t.CurrentDimension())
	require.Equal(s.T(), 4, s.t.NumberOfVertices())
	require.Equal(s.T(), 4, s.t.NumberOfFullCells())
	require.NoError(s.T(), s.t.Validate(2))

	assert.Len(s.T(), s.t.IncidentFullCells(s.inf), 3)
	assert.Len(s.T(), s.t.IncidentFullCells(s.a), 3)
	f := s.finite()
	for _, v := range []tds.VertexID{s.a, s.b, s.c} {
		assert.True(s.T(), s.t.HasVertex(f, v))
	}
}

func (s *TDSSuite) TestMirrorRelations() {
	for _, c := range s.t.FullCells() {
		for i := 0; i <= 2; i++ {
			n := s.t.Neighbor(c, i)
			j := s.t.MirrorIndex(c, i)
			assert.Equal(s.T(), c, s.t.Neighbor(n, j))
			assert.False(s.T(), s.t.HasVertex(c, s.t.MirrorVertex(c, i)))
		}
	}
}

func (s *TDSSuite) TestDimensionOverflowPanics() {
	assertPanicsWith(s.T(), tds.ErrDimensionOverflow, func() {
		s.t.InsertIncreaseDimension(s.inf)
	})
}

func (s *TDSSuite) TestInsertInFullCell() {
	v := s.t.InsertInFullCell(s.finite())
	require.Equal(s.T(), 6, s.t.NumberOfFullCells())
	require.Equal(s.T(), 5, s.t.NumberOfVertices())
	require.NoError(s.T(), s.t.Validate(2))
	assert.Len(s.T(), s.t.IncidentFullCells(v), 3)
}

func (s *TDSSuite) TestInsertInFacet() {
	f := s.finite()
	v := s.t.InsertInFacet(tds.Facet{Cell: f, Index: 0})
	require.Equal(s.T(), 6, s.t.NumberOfFullCells())
	require.NoError(s.T(), s.t.Validate(2))
	assert.Len(s.T(), s.t.IncidentFullCells(v), 4)
}

func (s *TDSSuite) TestInsertInFaceOfEdge() {
	f := s.finite()
	face := tds.Face{Cell: f, Indices: []int{1, 2}}
	require.Equal(s.T(), 1, face.FaceDimension())
	v := s.t.InsertInFace(face)
	require.NoError(s.T(), s.t.Validate(2))
	assert.Len(s.T(), s.t.IncidentFullCells(v), 4)
}

func (s *TDSSuite) TestInsertInHoleRejectsInteriorFacet() {
	f := s.finite()
	n := s.t.Neighbor(f, 0)
	assertPanicsWith(s.T(), tds.ErrNotBoundaryFacet, func() {
		s.t.InsertInHole([]tds.CellID{f, n}, tds.Facet{Cell: f, Index: 0})
	})
	assertPanicsWith(s.T(), tds.ErrEmptyHole, func() {
		s.t.InsertInHole(nil, tds.Facet{Cell: f, Index: 0})
	})
}

func (s *TDSSuite) TestContractVertexKeepsCounts() {
	v := s.t.InsertInFullCell(s.finite())
	c := s.t.FullCell(v)
	w := s.t.ContractFace(tds.Face{Cell: c, Indices: []int{s.t.IndexOf(c, v)}})
	require.False(s.T(), s.t.IsVertex(v))
	require.NotEqual(s.T(), v, w)
	require.Equal(s.T(), 6, s.t.NumberOfFullCells())
	require.Equal(s.T(), 5, s.t.NumberOfVertices())
	require.NoError(s.T(), s.t.Validate(2))
}

func (s *TDSSuite) TestContractEdge() {
	v := s.t.InsertInFullCell(s.finite())
	var face tds.Face
	for _, c := range s.t.IncidentFullCells(v) {
		if s.t.HasVertex(c, s.a) {
			face = tds.Face{Cell: c, Indices: []int{s.t.IndexOf(c, v), s.t.IndexOf(c, s.a)}}
			break
		}
	}
	require.Len(s.T(), face.Indices, 2)
	w := s.t.ContractFace(face)
	require.Equal(s.T(), 4, s.t.NumberOfFullCells())
	require.Equal(s.T(), 4, s.t.NumberOfVertices())
	require.NoError(s.T(), s.t.Validate(2))
	assert.Len(s.T(), s.t.IncidentFullCells(w), 3)
}

func (s *TDSSuite) TestGatherStopsWhereRejected() {
	f := s.finite()
	only := s.t.GatherFullCells(f, func(tds.Facet) bool { return false })
	assert.Equal(s.T(), []tds.CellID{f}, only)
	all := s.t.GatherFullCells(f, func(tds.Facet) bool { return true })
	assert.Len(s.T(), all, 4)
	assert.Equal(s.T(), f, all[0])
}

func (s *TDSSuite) TestValidateReportsFlippedCell() {
	s.t.SwapVertices(s.finite(), 0, 1)
	require.NoError(s.T(), s.t.Validate(1))
	err := s.t.Validate(2)
	require.Error(s.T(), err)
	assert.True(s.T(), errors.Is(err, tds.ErrInconsistentOrientation))
}

func (s *TDSSuite) TestValidateReportsDanglingVertex() {
	s.t.DeleteVertex(s.b)
	err := s.t.Validate(0)
	require.Error(s.T(), err)
	assert.True(s.T(), errors.Is(err, tds.ErrDanglingReference))
}

func (s *TDSSuite) TestValidateReportsAsymmetry() {
	f := s.finite()
	// Point slot 0 at the cell behind slot 1; the old neighbor 0 is left
	// pointing at f.
	s.t.SetNeighbors(f, 0, s.t.Neighbor(f, 1), s.t.MirrorIndex(f, 1))
	err := s.t.Validate(0)
	require.Error(s.T(), err)
	assert.True(s.T(), errors.Is(err, tds.ErrNeighborAsymmetry))
}

func (s *TDSSuite) TestInvalidHandlePanics() {
	assertPanicsWith(s.T(), tds.ErrInvalidHandle, func() { s.t.Vertex(tds.CellID(99), 0) })
	assertPanicsWith(s.T(), tds.ErrInvalidHandle, func() { s.t.Point(tds.NoVertex) })
}

func TestTDSSuite(t *testing.T) {
	suite.Run(t, new(TDSSuite))
}

func TestLowDimensions(t *testing.T) {
	tr := tds.New(3)
	require.Equal(t, -2, tr.CurrentDimension())
	require.NoError(t, tr.Validate(2))

	inf := tr.InsertIncreaseDimension(tds.NoVertex)
	require.Equal(t, -1, tr.CurrentDimension())
	require.Equal(t, 1, tr.NumberOfFullCells())
	require.NoError(t, tr.Validate(1))

	tr.InsertIncreaseDimension(inf)
	require.Equal(t, 0, tr.CurrentDimension())
	require.Equal(t, 2, tr.NumberOfFullCells())
	require.NoError(t, tr.Validate(1))

	tr.InsertIncreaseDimension(inf)
	require.Equal(t, 1, tr.CurrentDimension())
	require.Equal(t, 3, tr.NumberOfFullCells())
	require.NoError(t, tr.Validate(2))

	tr.InsertIncreaseDimension(inf)
	tr.InsertIncreaseDimension(inf)
	require.Equal(t, 3, tr.CurrentDimension())
	// A tetrahedron and its four unbounded neighbors.
	require.Equal(t, 5, tr.NumberOfFullCells())
	require.NoError(t, tr.Validate(2))

	tr.Clear()
	assert.Equal(t, -2, tr.CurrentDimension())
	assert.Zero(t, tr.NumberOfVertices())
	assert.Zero(t, tr.NumberOfFullCells())
}

func TestHandlesAreRecycled(t *testing.T) {
	tr := tds.New(1)
	v := tr.NewVertex(nil)
	tr.DeleteVertex(v)
	assert.False(t, tr.IsVertex(v))
	assert.Equal(t, v, tr.NewVertex(nil))

	c := tr.NewFullCell()
	tr.DeleteFullCell(c)
	assert.Equal(t, c, tr.NewFullCell())
	assert.Equal(t, tds.NoVertex, tr.Vertex(c, 0))
	assert.Equal(t, tds.NoCell, tr.Neighbor(c, 1))
}

// assertPanicsWith checks that fn panics with an error matching target.
func assertPanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	fn()
}
