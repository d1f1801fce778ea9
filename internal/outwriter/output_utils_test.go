package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{"precision 1", 1, 26.26, "26.3"},
		{"precision 2", 2, 1.5, "1.50"},
		{"whole score", 1, 79, "79.0"},
		{"negative", 2, -3.456, "-3.46"},
		{"nan", 1, math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, intFmt := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "%d", intFmt)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]any{"indicator": "fcs", "rows": 3}))
	assert.Equal(t, "{\n  \"indicator\": \"fcs\",\n  \"rows\": 3\n}\n", buf.String())
}

func TestWriteJSONError(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteCSVWithHeader(t *testing.T) {
	t.Run("rows follow header", func(t *testing.T) {
		var buf bytes.Buffer
		err := writeCSVWithHeader(&buf, []string{"source", "message"}, func(w *csv.Writer) error {
			return w.Write([]string{"a.csv", "Missing required columns: FCSStap, FCSPulse"})
		})
		require.NoError(t, err)
		assert.Equal(t, "source,message\na.csv,\"Missing required columns: FCSStap, FCSPulse\"\n", buf.String())
	})

	t.Run("row error propagates", func(t *testing.T) {
		var buf bytes.Buffer
		err := writeCSVWithHeader(&buf, []string{"col"}, func(*csv.Writer) error {
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestWriteWithFile(t *testing.T) {
	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		err := writeWithFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, "hello")
			return err
		}, "Wrote text")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))
	})

	t.Run("writer error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		err := writeWithFile(path, func(io.Writer) error { return assert.AnError }, "Wrote text")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("bad path", func(t *testing.T) {
		err := writeWithFile("/nonexistent/dir/out.txt", func(io.Writer) error { return nil }, "Wrote text")
		assert.Error(t, err)
	})
}

func TestFormatCounts(t *testing.T) {
	counts := map[schema.Label]int{
		schema.PoorLabel:       1,
		schema.AcceptableLabel: 2,
	}
	assert.Equal(t, "Poor=1, Borderline=0, Acceptable=2", formatCounts(schema.FCSKey, counts))

	counts[schema.Unclassified] = 3
	assert.Equal(t, "Poor=1, Borderline=0, Acceptable=2, Unclassified=3", formatCounts(schema.FCSKey, counts))

	assert.Equal(t, "Minimal=0, Moderate=0, Severe=0", formatCounts(schema.RCSIKey, nil))
}

func TestLabelText(t *testing.T) {
	plain := &contract.Config{UseColors: false}
	assert.Equal(t, "Severe", labelText(schema.SevereLabel, plain))
	assert.Equal(t, contract.UnclassifiedText, labelText(schema.Unclassified, plain))
}

func TestGetMaxTablePathWidth(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{width: 60, expected: 15},
		{width: 100, expected: 40},
		{width: 300, expected: 70},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, getMaxTablePathWidth(&contract.Config{Width: tt.width}))
	}
}
