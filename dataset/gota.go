package dataset

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// FromDataFrame copies a gota DataFrame into a Frame. Column kinds follow the
// types gota inferred; NA entries become nulls.
func FromDataFrame(df dataframe.DataFrame) (*Frame, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("dataframe: %w", df.Err)
	}
	columns := make([]*Series, 0, df.Ncol())
	for _, name := range df.Names() {
		columns = append(columns, fromGotaSeries(name, df.Col(name)))
	}
	return NewFrame(columns...)
}

func fromGotaSeries(name string, s series.Series) *Series {
	nulls := s.IsNaN()
	out := &Series{name: name, nulls: nulls}
	switch s.Type() {
	case series.Int:
		out.kind = Int
	case series.Float:
		out.kind = Float
	case series.Bool:
		out.kind = Bool
	default:
		out.kind = String
		out.text = s.Records()
		return out
	}
	out.values = s.Float()
	for i, null := range nulls {
		if null {
			out.values[i] = math.NaN()
		}
	}
	return out
}
