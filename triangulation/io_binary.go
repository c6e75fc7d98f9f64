package triangulation

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/katalvlaran/simplicia/kernel"
)

// Field numbers of the binary encoding. Each field is a protobuf wire-format
// record, so the payload can be inspected with standard protobuf tooling.
const (
	fieldDimension   protowire.Number = 1 // sint (zigzag varint)
	fieldVertexCount protowire.Number = 2 // varint
	fieldInfinity    protowire.Number = 3 // empty bytes, present iff vertices follow
	fieldVertex      protowire.Number = 4 // bytes: packed fixed64 coordinates, one record per vertex
	fieldCellCount   protowire.Number = 5 // varint
	fieldCell        protowire.Number = 6 // bytes: packed varint vertex indices, one record per cell
	fieldNeighbors   protowire.Number = 7 // bytes: packed varint cell indices, one record per cell
)

// MarshalBinary implements encoding.BinaryMarshaler with the same content
// and ordering as WriteText.
func (t *Triangulation) MarshalBinary() ([]byte, error) {
	s := t.snapshot()
	var b []byte
	b = protowire.AppendTag(b, fieldDimension, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(s.Dim)))
	b = protowire.AppendTag(b, fieldVertexCount, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(len(s.Points)))
	if len(s.Points) == 0 {
		return b, nil
	}
	b = protowire.AppendTag(b, fieldInfinity, protowire.BytesType)
	b = protowire.AppendBytes(b, nil)
	var packed []byte
	for _, p := range s.Points {
		packed = packed[:0]
		for _, x := range p {
			packed = protowire.AppendFixed64(packed, math.Float64bits(x))
		}
		b = protowire.AppendTag(b, fieldVertex, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	b = protowire.AppendTag(b, fieldCellCount, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(len(s.Conn.Cells)))
	for _, rows := range []struct {
		num  protowire.Number
		rows [][]int
	}{{fieldCell, s.Conn.Cells}, {fieldNeighbors, s.Conn.Neighbors}} {
		for _, row := range rows.rows {
			packed = packed[:0]
			for _, x := range row {
				packed = protowire.AppendVarint(packed, uint64(x))
			}
			b = protowire.AppendTag(b, rows.num, protowire.BytesType)
			b = protowire.AppendBytes(b, packed)
		}
	}

	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It has the same
// checks and failure modes as ReadText: on any error t is left unchanged.
func (t *Triangulation) UnmarshalBinary(data []byte) error {
	s := snapshot{Dim: -1}
	var (
		vertexCount, cellCount uint64
		infinity               bool
	)
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformedInput, protowire.ParseError(n))
		}
		data = data[n:]
		switch {
		case typ == protowire.VarintType && (num == fieldDimension || num == fieldVertexCount || num == fieldCellCount):
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformedInput, num, protowire.ParseError(m))
			}
			data = data[m:]
			switch num {
			case fieldDimension:
				s.Dim = int(protowire.DecodeZigZag(v))
				if s.Dim > t.ambient {
					return fmt.Errorf("%w: %d > %d", ErrDimensionTooHigh, s.Dim, t.ambient)
				}
			case fieldVertexCount:
				vertexCount = v
			case fieldCellCount:
				cellCount = v
			}
		case typ == protowire.BytesType && num >= fieldInfinity && num <= fieldNeighbors && num != fieldCellCount:
			raw, m := protowire.ConsumeBytes(data)
			if m < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformedInput, num, protowire.ParseError(m))
			}
			data = data[m:]
			var err error
			switch num {
			case fieldInfinity:
				infinity = true
			case fieldVertex:
				var p kernel.Point
				if p, err = decodeCoordinates(raw); err == nil {
					s.Points = append(s.Points, p)
				}
			case fieldCell:
				var row []int
				if row, err = decodeIndices(raw); err == nil {
					s.Conn.Cells = append(s.Conn.Cells, row)
				}
			case fieldNeighbors:
				var row []int
				if row, err = decodeIndices(raw); err == nil {
					s.Conn.Neighbors = append(s.Conn.Neighbors, row)
				}
			}
			if err != nil {
				return fmt.Errorf("%w: field %d: %v", ErrMalformedInput, num, err)
			}
		default:
			m := protowire.ConsumeFieldValue(num, typ, data)
			if m < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformedInput, num, protowire.ParseError(m))
			}
			data = data[m:]
		}
	}
	if uint64(len(s.Points)) != vertexCount {
		return fmt.Errorf("%w: %d vertices announced, %d present", ErrMalformedInput, vertexCount, len(s.Points))
	}
	if vertexCount > 0 && !infinity {
		return fmt.Errorf("%w: missing vertex at infinity", ErrMalformedInput)
	}
	if uint64(len(s.Conn.Cells)) != cellCount || uint64(len(s.Conn.Neighbors)) != cellCount {
		return fmt.Errorf("%w: %d cells announced, %d/%d present", ErrMalformedInput, cellCount, len(s.Conn.Cells), len(s.Conn.Neighbors))
	}

	return t.restore(s)
}

func decodeCoordinates(raw []byte) (kernel.Point, error) {
	p := make(kernel.Point, 0, len(raw)/8)
	for len(raw) > 0 {
		v, n := protowire.ConsumeFixed64(raw)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		p = append(p, math.Float64frombits(v))
		raw = raw[n:]
	}

	return p, nil
}

func decodeIndices(raw []byte) ([]int, error) {
	var row []int
	for len(raw) > 0 {
		v, n := protowire.ConsumeVarint(raw)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		if v > math.MaxInt32 {
			return nil, fmt.Errorf("index %d out of range", v)
		}
		row = append(row, int(v))
		raw = raw[n:]
	}

	return row, nil
}
