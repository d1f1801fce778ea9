package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestNewFrame(t *testing.T) {
	f, err := NewFrame(Ints("a", 1, 2), Floats("b", 0.5, 1.5), Strings("c", "x", "y"))
	require.NoError(t, err)
	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, []string{"a", "b", "c"}, f.Names())

	col, ok := f.Column("b")
	require.True(t, ok)
	assert.Equal(t, Float, col.Kind())
	assert.Equal(t, 1.5, col.Float(1))

	_, ok = f.Column("missing")
	assert.False(t, ok)
}

func TestNewFrameErrors(t *testing.T) {
	_, err := NewFrame(Ints("a", 1, 2), Ints("b", 1))
	assert.Error(t, err)

	_, err = NewFrame(Ints("a", 1), Ints("a", 2))
	assert.Error(t, err)
}

func TestEmptyFrame(t *testing.T) {
	f, err := NewFrame(Floats("a"), Ints("b"))
	require.NoError(t, err)
	assert.Equal(t, 0, f.Rows())

	f, err = NewFrame()
	require.NoError(t, err)
	assert.Equal(t, 0, f.Rows())
	assert.Empty(t, f.Names())
}

func TestSeriesNulls(t *testing.T) {
	tests := []struct {
		name     string
		series   *Series
		expected []bool
	}{
		{"nan float", Floats("f", 1, math.NaN()), []bool{false, true}},
		{"nullable float", NullableFloats("f", ptr(1), nil), []bool{false, true}},
		{"int with nulls", Ints("i", 1, 2, 3).WithNulls(1), []bool{false, true, false}},
		{"strings", Strings("s", "", "a"), []bool{false, false}},
		{"strings with nulls", Strings("s", "", "a").WithNulls(0), []bool{true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, want := range tt.expected {
				assert.Equal(t, want, tt.series.IsNull(i), "row %d", i)
			}
		})
	}
}

func TestSeriesFloat(t *testing.T) {
	assert.Equal(t, 1.0, Bools("b", true, false).Float(0))
	assert.Equal(t, 0.0, Bools("b", true, false).Float(1))
	assert.Equal(t, 3.0, Ints("i", 3).Float(0))
	assert.Equal(t, 2.5, Strings("s", "2.5").Float(0))
	assert.True(t, math.IsNaN(Strings("s", "abc").Float(0)))
	assert.True(t, math.IsNaN(Ints("i", 3).WithNulls(0).Float(0)))
}

func TestKind(t *testing.T) {
	assert.True(t, Int.IsNumeric())
	assert.True(t, Float.IsNumeric())
	assert.True(t, Bool.IsNumeric())
	assert.False(t, String.IsNumeric())
	assert.False(t, Other.IsNumeric())
	assert.Equal(t, "bool", Bool.String())
}
