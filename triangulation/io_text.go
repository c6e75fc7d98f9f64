package triangulation

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/simplicia/kernel"
)

// infinityMarker stands for the vertex at infinity in the text format.
const infinityMarker = "inf"

// WriteText writes t in the whitespace-separated text format:
//
//	current dimension
//	number of finite vertices n
//	the marker "inf" for the vertex at infinity (index 0)
//	n lines of D coordinates (vertices 1..n)
//	number of full cells m
//	m lines of vertex indices, in slot order
//	m lines of neighbor cell indices, in slot order
//
// When n is 0 the output stops after the vertex count.
func (t *Triangulation) WriteText(w io.Writer) error {
	s := t.snapshot()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", s.Dim, len(s.Points))
	if len(s.Points) == 0 {
		return bw.Flush()
	}
	fmt.Fprintln(bw, infinityMarker)
	for _, p := range s.Points {
		for j, x := range p {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "%d\n", len(s.Conn.Cells))
	writeRows(bw, s.Conn.Cells)
	writeRows(bw, s.Conn.Neighbors)

	return bw.Flush()
}

func writeRows(bw *bufio.Writer, rows [][]int) {
	for _, row := range rows {
		for j, x := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(x))
		}
		bw.WriteByte('\n')
	}
}

// ReadText replaces t by the triangulation read from r in the format written
// by WriteText. Coordinates are read with the ambient dimension of t. Input
// of a higher current dimension fails with ErrDimensionTooHigh; the result
// is checked combinatorially and other failures wrap ErrMalformedInput. On
// any error t is left unchanged.
func (t *Triangulation) ReadText(r io.Reader) error {
	br := bufio.NewReader(r)
	var s snapshot
	var n int
	if _, err := fmt.Fscan(br, &s.Dim, &n); err != nil {
		return fmt.Errorf("%w: header: %v", ErrMalformedInput, err)
	}
	if s.Dim > t.ambient {
		return fmt.Errorf("%w: %d > %d", ErrDimensionTooHigh, s.Dim, t.ambient)
	}
	if n < 0 {
		return fmt.Errorf("%w: vertex count %d", ErrMalformedInput, n)
	}
	if n > 0 {
		var marker string
		if _, err := fmt.Fscan(br, &marker); err != nil || marker != infinityMarker {
			return fmt.Errorf("%w: expected %q before the vertices", ErrMalformedInput, infinityMarker)
		}
		s.Points = make([]kernel.Point, 0, min(n, 1<<16))
		for i := 0; i < n; i++ {
			p := make(kernel.Point, t.ambient)
			for j := range p {
				if _, err := fmt.Fscan(br, &p[j]); err != nil {
					return fmt.Errorf("%w: vertex %d: %v", ErrMalformedInput, i+1, err)
				}
			}
			s.Points = append(s.Points, p)
		}
		var m int
		if _, err := fmt.Fscan(br, &m); err != nil || m < 0 {
			return fmt.Errorf("%w: full cell count", ErrMalformedInput)
		}
		var err error
		width := s.Dim + 1
		if width < 1 {
			return fmt.Errorf("%w: %d vertices in dimension %d", ErrMalformedInput, n, s.Dim)
		}
		if s.Conn.Cells, err = readRows(br, m, width); err != nil {
			return fmt.Errorf("%w: full cells: %v", ErrMalformedInput, err)
		}
		if s.Conn.Neighbors, err = readRows(br, m, width); err != nil {
			return fmt.Errorf("%w: neighbors: %v", ErrMalformedInput, err)
		}
	}

	return t.restore(s)
}

func readRows(br *bufio.Reader, m, width int) ([][]int, error) {
	rows := make([][]int, 0, min(m, 1<<16))
	for r := 0; r < m; r++ {
		row := make([]int, width)
		for j := range row {
			if _, err := fmt.Fscan(br, &row[j]); err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
