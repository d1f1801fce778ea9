package dataset

import (
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// FromRecord copies an Arrow record batch into a Frame.
func FromRecord(rec arrow.Record) (*Frame, error) {
	columns := make([]*Series, 0, rec.NumCols())
	for i := 0; i < int(rec.NumCols()); i++ {
		s := newArrowSeries(rec.ColumnName(i), rec.Column(i).DataType())
		appendArrow(s, rec.Column(i))
		columns = append(columns, s)
	}
	return NewFrame(columns...)
}

// FromTable copies a chunked Arrow table into a Frame.
func FromTable(tbl arrow.Table) (*Frame, error) {
	columns := make([]*Series, 0, tbl.NumCols())
	for i := 0; i < int(tbl.NumCols()); i++ {
		col := tbl.Column(i)
		s := newArrowSeries(col.Name(), col.DataType())
		for _, chunk := range col.Data().Chunks() {
			appendArrow(s, chunk)
		}
		columns = append(columns, s)
	}
	f, err := NewFrame(columns...)
	if err != nil {
		return nil, fmt.Errorf("arrow table: %w", err)
	}
	return f, nil
}

func newArrowSeries(name string, dt arrow.DataType) *Series {
	return &Series{name: name, kind: arrowKind(dt), nulls: []bool{}}
}

func arrowKind(dt arrow.DataType) Kind {
	switch dt.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return Int
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return Float
	case arrow.BOOL:
		return Bool
	case arrow.STRING, arrow.LARGE_STRING:
		return String
	default:
		return Other
	}
}

// appendArrow extends s with the entries of arr.
func appendArrow(s *Series, arr arrow.Array) {
	for i := 0; i < arr.Len(); i++ {
		null := arr.IsNull(i)
		s.nulls = append(s.nulls, null)
		if s.kind == String || s.kind == Other {
			text := ""
			if !null {
				text = arr.ValueStr(i)
			}
			s.text = append(s.text, text)
			continue
		}
		v := math.NaN()
		if !null {
			v = arrowFloat(arr, i)
		}
		s.values = append(s.values, v)
	}
}

func arrowFloat(arr arrow.Array, i int) float64 {
	switch a := arr.(type) {
	case *array.Int8:
		return float64(a.Value(i))
	case *array.Int16:
		return float64(a.Value(i))
	case *array.Int32:
		return float64(a.Value(i))
	case *array.Int64:
		return float64(a.Value(i))
	case *array.Uint8:
		return float64(a.Value(i))
	case *array.Uint16:
		return float64(a.Value(i))
	case *array.Uint32:
		return float64(a.Value(i))
	case *array.Uint64:
		return float64(a.Value(i))
	case *array.Float16:
		return float64(a.Value(i).Float32())
	case *array.Float32:
		return float64(a.Value(i))
	case *array.Float64:
		return a.Value(i)
	case *array.Boolean:
		if a.Value(i) {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}
