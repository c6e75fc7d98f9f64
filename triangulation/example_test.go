package triangulation_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/simplicia/kernel"
	"github.com/katalvlaran/simplicia/tds"
	"github.com/katalvlaran/simplicia/triangulation"
)

// ExampleTriangulation_Insert grows a triangulation of the plane one point
// at a time and reports the dimension reached after each insertion.
func ExampleTriangulation_Insert() {
	tr := triangulation.New(2)
	for _, p := range []kernel.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		tr.Insert(p, tds.NoCell)
		fmt.Printf("dim=%d vertices=%d bounded=%d cells=%d\n",
			tr.CurrentDimension(), tr.NumberOfVertices(), tr.NumberOfFiniteFullCells(), tr.NumberOfFullCells())
	}
	fmt.Println("valid:", tr.IsValid(false, 2))
	// Output:
	// dim=0 vertices=1 bounded=1 cells=2
	// dim=1 vertices=2 bounded=1 cells=3
	// dim=2 vertices=3 bounded=1 cells=4
	// dim=2 vertices=4 bounded=2 cells=6
	// valid: true
}

// ExampleTriangulation_Locate classifies query points against a triangle.
func ExampleTriangulation_Locate() {
	tr := triangulation.New(2)
	tr.InsertAll([]kernel.Point{{0, 0}, {4, 0}, {0, 4}})
	for _, q := range []kernel.Point{{1, 1}, {2, 0}, {4, 0}, {5, 5}} {
		fmt.Println(q, tr.Locate(q, tds.NoCell).Type)
	}
	// Output:
	// [1 1] IN_SIMPLEX
	// [2 0] IN_FACET
	// [4 0] ON_VERTEX
	// [5 5] OUTSIDE_CONVEX_HULL
}

// ExampleTriangulation_ReadText round-trips a triangulation through its
// text form.
func ExampleTriangulation_ReadText() {
	src := triangulation.New(3)
	src.InsertAll([]kernel.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}})

	var buf bytes.Buffer
	if err := src.WriteText(&buf); err != nil {
		fmt.Println(err)
		return
	}
	dst := triangulation.New(3)
	if err := dst.ReadText(&buf); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dst.CurrentDimension(), dst.NumberOfVertices(), dst.IsValid(false, 2))
	// Output:
	// 3 5 true
}
