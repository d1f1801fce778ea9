package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/huangsam/foodsec/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    schema.Label
		expected string
	}{
		{name: "fcs poor", input: schema.PoorLabel, expected: "Poor"},
		{name: "rcsi severe", input: schema.SevereLabel, expected: "Severe"},
		{name: "unclassified", input: schema.Unclassified, expected: UnclassifiedText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	original := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = original }()

	assert.Equal(t, HighColor.Sprint("Poor"), GetColorLabel(schema.PoorLabel))
	assert.Equal(t, MediumColor.Sprint("Moderate"), GetColorLabel(schema.ModerateLabel))
	assert.Equal(t, LowColor.Sprint("Minimal"), GetColorLabel(schema.MinimalLabel))
	assert.Equal(t, NoneColor.Sprint(UnclassifiedText), GetColorLabel(schema.Unclassified))
	assert.Contains(t, GetColorLabel(schema.AcceptableLabel), "Acceptable")
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.FileExists(t, path)
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short.csv", TruncatePath("short.csv", 20))
	assert.Equal(t, "...ey.csv", TruncatePath("data/survey.csv", 9))
	assert.Equal(t, "data/survey.csv", TruncatePath("data/survey.csv", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
