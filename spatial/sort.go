package spatial

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/simplicia/kernel"
)

// Sort reorders points in place along a k-d tree in-order traversal. All
// points must have the same number of coordinates. The result depends only
// on the input order: equal inputs always give equal outputs.
func Sort(points []kernel.Point) {
	if len(points) < 2 {
		return
	}
	items := make(nodes, len(points))
	for i, p := range points {
		items[i] = node(p)
	}
	tree := kdtree.New(items, false)
	i := 0
	tree.Do(func(c kdtree.Comparable, _ *kdtree.Bounding, _ int) bool {
		points[i] = kernel.Point(c.(node))
		i++

		return false
	})
}

// node adapts a point to kdtree.Comparable.
type node kernel.Point

func (p node) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p[d] - c.(node)[d]
}

func (p node) Dims() int { return len(p) }

func (p node) Distance(c kdtree.Comparable) float64 {
	q := c.(node)
	var sum float64
	for i := range p {
		d := p[i] - q[i]
		sum += d * d
	}

	return sum
}

// nodes adapts a point slice to kdtree.Interface.
type nodes []node

func (s nodes) Index(i int) kdtree.Comparable         { return s[i] }
func (s nodes) Len() int                              { return len(s) }
func (s nodes) Slice(start, end int) kdtree.Interface { return s[start:end] }

// Pivot stably orders s along d and returns the median. kdtree.Select and
// kdtree.MedianOfMedians draw from an unseeded global source.
func (s nodes) Pivot(d kdtree.Dim) int {
	sort.Stable(plane{nodes: s, dim: d})

	return len(s) / 2
}

// plane orders nodes along one axis; equal coordinates keep their order.
type plane struct {
	nodes
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool { return p.nodes[i][p.dim] < p.nodes[j][p.dim] }
func (p plane) Swap(i, j int)      { p.nodes[i], p.nodes[j] = p.nodes[j], p.nodes[i] }
