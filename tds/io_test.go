package tds_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicia/tds"
)

// grown returns a TDS of dimension 2 with one interior vertex.
func grown(t *testing.T) *tds.TDS {
	t.Helper()
	tr := tds.New(2)
	inf := tr.InsertIncreaseDimension(tds.NoVertex)
	for i := 0; i < 3; i++ {
		tr.InsertIncreaseDimension(inf)
	}
	for _, c := range tr.FullCells() {
		if !tr.HasVertex(c, inf) {
			tr.InsertInFullCell(c)
			break
		}
	}
	require.NoError(t, tr.Validate(2))

	return tr
}

func exportIndex(tr *tds.TDS) ([]tds.VertexID, map[tds.VertexID]int) {
	vs := tr.Vertices()
	index := make(map[tds.VertexID]int, len(vs))
	for p, v := range vs {
		index[v] = p
	}

	return vs, index
}

func TestFullCells_RoundTrip(t *testing.T) {
	src := grown(t)
	vs, index := exportIndex(src)
	conn := src.WriteFullCells(index)
	require.Len(t, conn.Cells, src.NumberOfFullCells())

	dst := tds.New(2)
	dst.SetCurrentDimension(2)
	fresh := make([]tds.VertexID, len(vs))
	for p := range fresh {
		fresh[p] = dst.NewVertex(nil)
	}
	require.NoError(t, dst.ReadFullCells(fresh, conn))
	require.NoError(t, dst.Validate(2))

	_, index2 := exportIndex(dst)
	if diff := cmp.Diff(conn, dst.WriteFullCells(index2)); diff != "" {
		t.Fatalf("connectivity changed across round trip (-want +got):\n%s", diff)
	}
}

func TestReadFullCells_Rejects(t *testing.T) {
	src := grown(t)
	vs, index := exportIndex(src)
	conn := src.WriteFullCells(index)

	fresh := func() (*tds.TDS, []tds.VertexID) {
		dst := tds.New(2)
		dst.SetCurrentDimension(2)
		ids := make([]tds.VertexID, len(vs))
		for p := range ids {
			ids[p] = dst.NewVertex(nil)
		}

		return dst, ids
	}

	t.Run("neighbor out of range", func(t *testing.T) {
		dst, ids := fresh()
		bad := cloneConn(conn)
		bad.Neighbors[0][0] = len(bad.Cells)
		assert.ErrorIs(t, dst.ReadFullCells(ids, bad), tds.ErrMalformedConnectivity)
	})
	t.Run("row width", func(t *testing.T) {
		dst, ids := fresh()
		bad := cloneConn(conn)
		bad.Cells[1] = bad.Cells[1][:2]
		assert.ErrorIs(t, dst.ReadFullCells(ids, bad), tds.ErrMalformedConnectivity)
	})
	t.Run("asymmetric neighbors", func(t *testing.T) {
		dst, ids := fresh()
		bad := cloneConn(conn)
		bad.Neighbors[0][0] = 0
		err := dst.ReadFullCells(ids, bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, tds.ErrMalformedConnectivity))
		assert.True(t, errors.Is(err, tds.ErrNeighborAsymmetry))
	})
}

func cloneConn(c tds.Connectivity) tds.Connectivity {
	out := tds.Connectivity{
		Cells:     make([][]int, len(c.Cells)),
		Neighbors: make([][]int, len(c.Neighbors)),
	}
	for r := range c.Cells {
		out.Cells[r] = append([]int(nil), c.Cells[r]...)
		out.Neighbors[r] = append([]int(nil), c.Neighbors[r]...)
	}

	return out
}
