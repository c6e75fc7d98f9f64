package triangulation

import (
	"fmt"

	"github.com/katalvlaran/simplicia/kernel"
	"github.com/katalvlaran/simplicia/tds"
)

// snapshot is the serialized form shared by the text and binary codecs.
// Vertex index 0 is the vertex at infinity; Points[i] is vertex i+1.
type snapshot struct {
	Dim    int
	Points []kernel.Point
	Conn   tds.Connectivity
}

// snapshot exports the triangulation with the finite vertices in handle
// order.
func (t *Triangulation) snapshot() snapshot {
	s := snapshot{Dim: t.CurrentDimension()}
	finite := t.FiniteVertices()
	if len(finite) == 0 {
		return s
	}
	index := make(map[tds.VertexID]int, len(finite)+1)
	index[t.infinity] = 0
	s.Points = make([]kernel.Point, len(finite))
	for i, v := range finite {
		index[v] = i + 1
		s.Points[i] = t.tds.Point(v)
	}
	s.Conn = t.tds.WriteFullCells(index)

	return s
}

// restore replaces the content of t by s. The new content is built in a
// fresh structure and swapped in only once it checks out, so on error t is
// unchanged.
func (t *Triangulation) restore(s snapshot) error {
	if s.Dim > t.ambient {
		return fmt.Errorf("%w: %d > %d", ErrDimensionTooHigh, s.Dim, t.ambient)
	}
	staged := &Triangulation{
		ambient:      t.ambient,
		tds:          tds.New(t.ambient),
		kernel:       t.kernel,
		coaffine:     kernel.NewCoaffineOrientation(t.kernel),
		orientations: t.orientations,
		scratch:      t.scratch,
		rng:          t.rng,
		logf:         t.logf,
	}
	staged.Clear()
	if err := staged.build(s); err != nil {
		return err
	}
	t.tds, t.coaffine, t.infinity = staged.tds, staged.coaffine, staged.infinity
	t.walkSize = 0

	return nil
}

// build fills the empty triangulation t from s.
func (t *Triangulation) build(s snapshot) error {
	if len(s.Points) == 0 {
		if s.Dim != -1 {
			return fmt.Errorf("%w: no vertices in dimension %d", ErrMalformedInput, s.Dim)
		}
		return nil
	}
	if s.Dim < 0 {
		return fmt.Errorf("%w: %d vertices in dimension %d", ErrMalformedInput, len(s.Points), s.Dim)
	}
	for i, p := range s.Points {
		if len(p) != t.ambient {
			return fmt.Errorf("%w: point %d has %d coordinates", ErrMalformedInput, i, len(p))
		}
	}

	t.tds.SetCurrentDimension(s.Dim)
	vertices := make([]tds.VertexID, 0, len(s.Points)+1)
	vertices = append(vertices, t.infinity)
	for _, p := range s.Points {
		vertices = append(vertices, t.tds.NewVertex(p.Clone()))
	}
	if err := t.tds.ReadFullCells(vertices, s.Conn); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if !t.IsInfiniteCell(t.InfiniteFullCell()) {
		return fmt.Errorf("%w: vertex at infinity is not in slot 0", ErrMalformedInput)
	}
	if s.Dim >= 1 && s.Dim < t.ambient {
		pts := t.cellPoints(t.tds.Neighbor(t.InfiniteFullCell(), 0))
		if len(t.kernel.IndependentAxes(pts)) != s.Dim {
			return fmt.Errorf("%w: degenerate cell next to infinity", ErrMalformedInput)
		}
		t.rebase()
	}

	return nil
}
