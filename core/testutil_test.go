package core

import (
	"github.com/huangsam/foodsec/dataset"
	"github.com/huangsam/foodsec/schema"
)

// frameFromRows builds a float frame with one column per weight entry.
func frameFromRows(cols schema.ColumnWeights, rows ...[]float64) *dataset.Frame {
	series := make([]*dataset.Series, len(cols))
	for j, c := range cols {
		values := make([]float64, len(rows))
		for i, r := range rows {
			values[i] = r[j]
		}
		series[j] = dataset.Floats(c.Name, values...)
	}
	return dataset.MustFrame(series...)
}

// fcsFrame takes rows in FCSStap, FCSPulse, FCSDairy, FCSPr, FCSVeg, FCSFruit, FCSFat, FCSSugar order.
func fcsFrame(rows ...[8]float64) *dataset.Frame {
	names := []string{"FCSStap", "FCSPulse", "FCSDairy", "FCSPr", "FCSVeg", "FCSFruit", "FCSFat", "FCSSugar"}
	series := make([]*dataset.Series, len(names))
	for j, name := range names {
		values := make([]float64, len(rows))
		for i, r := range rows {
			values[i] = r[j]
		}
		series[j] = dataset.Floats(name, values...)
	}
	return dataset.MustFrame(series...)
}

// rcsiFrame takes rows in rCSILessQlty, rCSIBorrow, rCSIMealNb, rCSIMealSize, rCSIMealAdult order.
func rcsiFrame(rows ...[5]float64) *dataset.Frame {
	converted := make([][]float64, len(rows))
	for i, r := range rows {
		converted[i] = r[:]
	}
	return frameFromRows(schema.RCSIColumns(), converted...)
}
