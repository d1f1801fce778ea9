package dataset

import (
	"fmt"
	"math"
	"strconv"
)

// Series is the in-memory Column used by Frame.
type Series struct {
	name   string
	kind   Kind
	values []float64
	text   []string
	nulls  []bool
}

var _ Column = &Series{}

// Name returns the column name.
func (s *Series) Name() string { return s.name }

// Kind returns the storage kind.
func (s *Series) Kind() Kind { return s.kind }

// Len returns the number of entries.
func (s *Series) Len() int {
	if s.kind == String || s.kind == Other {
		return len(s.text)
	}
	return len(s.values)
}

// IsNull reports whether entry i is absent.
func (s *Series) IsNull(i int) bool {
	if s.nulls != nil && s.nulls[i] {
		return true
	}
	if s.kind == String || s.kind == Other {
		return false
	}
	return math.IsNaN(s.values[i])
}

// Float returns entry i as a float64, or NaN when it has no numeric value.
func (s *Series) Float(i int) float64 {
	if s.IsNull(i) {
		return math.NaN()
	}
	switch s.kind {
	case Int, Float, Bool:
		return s.values[i]
	default:
		f, err := strconv.ParseFloat(s.text[i], 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
}

// Floats builds a float column. NaN entries are nulls.
func Floats(name string, values ...float64) *Series {
	return &Series{name: name, kind: Float, values: values}
}

// NullableFloats builds a float column where nil entries are nulls.
func NullableFloats(name string, values ...*float64) *Series {
	s := &Series{name: name, kind: Float, values: make([]float64, len(values)), nulls: make([]bool, len(values))}
	for i, v := range values {
		if v == nil {
			s.values[i] = math.NaN()
			s.nulls[i] = true
			continue
		}
		s.values[i] = *v
	}
	return s
}

// Ints builds an integer column.
func Ints(name string, values ...int) *Series {
	s := &Series{name: name, kind: Int, values: make([]float64, len(values))}
	for i, v := range values {
		s.values[i] = float64(v)
	}
	return s
}

// Bools builds a boolean column.
func Bools(name string, values ...bool) *Series {
	s := &Series{name: name, kind: Bool, values: make([]float64, len(values))}
	for i, v := range values {
		if v {
			s.values[i] = 1
		}
	}
	return s
}

// Strings builds a text column.
func Strings(name string, values ...string) *Series {
	return &Series{name: name, kind: String, text: values}
}

// WithNulls marks the given rows as null and returns the series.
func (s *Series) WithNulls(rows ...int) *Series {
	if s.nulls == nil {
		s.nulls = make([]bool, s.Len())
	}
	for _, r := range rows {
		s.nulls[r] = true
	}
	return s
}

// Frame is an in-memory Table with columns kept in insertion order.
type Frame struct {
	rows    int
	order   []string
	columns map[string]*Series
}

var _ Table = &Frame{}

// NewFrame builds a Frame from equally sized columns.
// Column names must be unique.
func NewFrame(columns ...*Series) (*Frame, error) {
	f := &Frame{columns: make(map[string]*Series, len(columns))}
	for i, c := range columns {
		if _, dup := f.columns[c.name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.name)
		}
		if i == 0 {
			f.rows = c.Len()
		} else if c.Len() != f.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", c.name, c.Len(), f.rows)
		}
		f.order = append(f.order, c.name)
		f.columns[c.name] = c
	}
	return f, nil
}

// MustFrame is like NewFrame but panics on error. Meant for fixtures.
func MustFrame(columns ...*Series) *Frame {
	f, err := NewFrame(columns...)
	if err != nil {
		panic(err)
	}
	return f
}

// Rows returns the number of rows.
func (f *Frame) Rows() int { return f.rows }

// Column looks up a column by exact name.
func (f *Frame) Column(name string) (Column, bool) {
	c, ok := f.columns[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// Names returns the column names in insertion order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}
