package dataset

import (
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDataFrame(t *testing.T) {
	csv := "a,b,c,d\n1,0.5,x,true\n2,,y,false\n"
	df := dataframe.ReadCSV(strings.NewReader(csv), dataframe.NaNValues([]string{"NA", "NaN", "<nil>", ""}))
	require.NoError(t, df.Err)

	f, err := FromDataFrame(df)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, []string{"a", "b", "c", "d"}, f.Names())

	a, _ := f.Column("a")
	assert.Equal(t, Int, a.Kind())
	assert.Equal(t, 2.0, a.Float(1))

	b, _ := f.Column("b")
	assert.Equal(t, Float, b.Kind())
	assert.False(t, b.IsNull(0))
	assert.True(t, b.IsNull(1))

	c, _ := f.Column("c")
	assert.Equal(t, String, c.Kind())

	d, _ := f.Column("d")
	assert.Equal(t, Bool, d.Kind())
	assert.Equal(t, 1.0, d.Float(0))
}

func TestFromRecord(t *testing.T) {
	mem := memory.NewGoAllocator()
	sc := arrow.NewSchema([]arrow.Field{
		{Name: "n", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "s", Type: arrow.BinaryTypes.String},
	}, nil)
	b := array.NewRecordBuilder(mem, sc)
	defer b.Release()

	b.Field(0).(*array.Int64Builder).AppendValues([]int64{3, 0}, []bool{true, false})
	b.Field(1).(*array.StringBuilder).AppendValues([]string{"x", "y"}, nil)
	rec := b.NewRecord()
	defer rec.Release()

	f, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Rows())

	n, _ := f.Column("n")
	assert.Equal(t, Int, n.Kind())
	assert.Equal(t, 3.0, n.Float(0))
	assert.True(t, n.IsNull(1))

	s, _ := f.Column("s")
	assert.Equal(t, String, s.Kind())

	tbl := array.NewTableFromRecords(sc, []arrow.Record{rec})
	defer tbl.Release()
	ft, err := FromTable(tbl)
	require.NoError(t, err)
	assert.Equal(t, f.Names(), ft.Names())
	assert.Equal(t, 2, ft.Rows())
}
