package outwriter

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/schema"
	pq "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []schema.IndicatorResult {
	return []schema.IndicatorResult{
		{
			Source:    "survey.csv",
			Indicator: schema.FCSKey,
			Name:      "Food Consumption Score",
			Variant:   schema.HighSugarOilVariant,
			Rows:      3,
			Counts:    map[schema.Label]int{schema.AcceptableLabel: 1, schema.PoorLabel: 1, schema.Unclassified: 1},
			Respondents: []schema.RespondentResult{
				{Source: "survey.csv", Row: 1, Indicator: schema.FCSKey, Variant: schema.HighSugarOilVariant, Score: 79, Label: schema.AcceptableLabel},
				{Source: "survey.csv", Row: 2, Indicator: schema.FCSKey, Variant: schema.HighSugarOilVariant, Score: 19, Label: schema.PoorLabel},
				{Source: "survey.csv", Row: 3, Indicator: schema.FCSKey, Variant: schema.HighSugarOilVariant, Score: math.NaN(), Label: schema.Unclassified},
			},
		},
		{
			Source:    "survey.csv",
			Indicator: schema.RCSIKey,
			Name:      "Reduced Coping Strategy Index",
			Variant:   schema.StandardVariant,
			Error:     "Missing required columns: rCSILessQlty",
		},
	}
}

func sampleReports() []schema.ValidationReport {
	return []schema.ValidationReport{
		{Source: "a.csv", Indicator: schema.FCSKey, Name: "Food Consumption Score", Valid: true, Message: "All validations passed successfully"},
		{Source: "a.csv", Indicator: schema.RCSIKey, Name: "Reduced Coping Strategy Index", Valid: false, Message: "Values outside 0-7 range in columns: rCSIBorrow", Columns: []string{"rCSIBorrow"}},
	}
}

func sampleModel() schema.IndicatorsRenderModel {
	return schema.IndicatorsRenderModel{
		Title: "Food Security Indicators",
		Indicators: []schema.IndicatorDefinition{
			{
				Key:     schema.RCSIKey,
				Name:    "Reduced Coping Strategy Index",
				Columns: schema.RCSIColumns(),
				Formula: schema.RCSIColumns().Formula(),
				Labels:  schema.LabelsFor(schema.RCSIKey),
				Range:   [2]float64{0, 7},
				Thresholds: []schema.ThresholdDefinition{
					{Variant: schema.StandardVariant, Default: true, Low: 4, High: 18.5, Bins: schema.ThresholdPair{Low: 4, High: 18.5}.Bins()},
				},
			},
		},
	}
}

func outputConfig(t *testing.T, mode schema.OutputMode, name string) *contract.Config {
	t.Helper()
	return &contract.Config{
		Output:     mode,
		OutputFile: filepath.Join(t.TempDir(), name),
		Precision:  1,
		Workers:    2,
		Width:      120,
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestWriteResults(t *testing.T) {
	ow := NewOutWriter()

	t.Run("text", func(t *testing.T) {
		cfg := outputConfig(t, schema.TextOut, "out.txt")
		require.NoError(t, ow.WriteResults(sampleResults(), cfg, time.Second))

		out := readFile(t, cfg.OutputFile)
		assert.Contains(t, out, "Food Consumption Score (high_sugar_oil) for survey.csv")
		assert.Contains(t, out, "79.0")
		assert.Contains(t, out, "Acceptable")
		assert.Contains(t, out, "Unclassified")
		assert.Contains(t, out, "Showing 3 of 3 respondents (Poor=1, Borderline=0, Acceptable=1, Unclassified=1)")
		assert.Contains(t, out, "Missing required columns: rCSILessQlty")
		assert.Contains(t, out, "Calculated 2 indicator results (1 failed)")
	})

	t.Run("text limit", func(t *testing.T) {
		cfg := outputConfig(t, schema.TextOut, "out.txt")
		cfg.ResultLimit = 1
		require.NoError(t, ow.WriteResults(sampleResults(), cfg, time.Second))
		assert.Contains(t, readFile(t, cfg.OutputFile), "Showing 1 of 3 respondents")
	})

	t.Run("csv", func(t *testing.T) {
		cfg := outputConfig(t, schema.CSVOut, "out.csv")
		require.NoError(t, ow.WriteResults(sampleResults(), cfg, time.Second))

		lines := strings.Split(strings.TrimSpace(readFile(t, cfg.OutputFile)), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "source,row,indicator,variant,score,label", lines[0])
		assert.Equal(t, "survey.csv,1,fcs,high_sugar_oil,79.0,Acceptable", lines[1])
		assert.Equal(t, "survey.csv,3,fcs,high_sugar_oil,NaN,", lines[3])
	})

	t.Run("json", func(t *testing.T) {
		cfg := outputConfig(t, schema.JSONOut, "out.json")
		require.NoError(t, ow.WriteResults(sampleResults(), cfg, time.Second))

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal([]byte(readFile(t, cfg.OutputFile)), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "fcs", decoded[0]["indicator"])
		respondents := decoded[0]["respondents"].([]any)
		assert.Nil(t, respondents[2].(map[string]any)["score"])
		assert.Equal(t, "Missing required columns: rCSILessQlty", decoded[1]["error"])
	})

	t.Run("parquet", func(t *testing.T) {
		cfg := outputConfig(t, schema.ParquetOut, "out.parquet")
		require.NoError(t, ow.WriteResults(sampleResults(), cfg, time.Second))

		f, err := os.Open(cfg.OutputFile)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		stat, err := f.Stat()
		require.NoError(t, err)
		file, err := pq.OpenFile(f, stat.Size())
		require.NoError(t, err)
		assert.Equal(t, int64(3), file.NumRows())
	})
}

func TestWriteValidation(t *testing.T) {
	ow := NewOutWriter()

	t.Run("text", func(t *testing.T) {
		cfg := outputConfig(t, schema.TextOut, "out.txt")
		require.NoError(t, ow.WriteValidation(sampleReports(), cfg, time.Second))

		out := readFile(t, cfg.OutputFile)
		assert.Contains(t, out, "PASS")
		assert.Contains(t, out, "FAIL")
		assert.Contains(t, out, "Values outside 0-7 range in columns: rCSIBorrow")
		assert.Contains(t, out, "1 of 2 checks passed")
	})

	t.Run("csv", func(t *testing.T) {
		cfg := outputConfig(t, schema.CSVOut, "out.csv")
		require.NoError(t, ow.WriteValidation(sampleReports(), cfg, time.Second))

		lines := strings.Split(strings.TrimSpace(readFile(t, cfg.OutputFile)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "source,indicator,valid,message,columns", lines[0])
		assert.Equal(t, "a.csv,rcsi,false,Values outside 0-7 range in columns: rCSIBorrow,rCSIBorrow", lines[2])
	})

	t.Run("json", func(t *testing.T) {
		cfg := outputConfig(t, schema.JSONOut, "out.json")
		require.NoError(t, ow.WriteValidation(sampleReports(), cfg, time.Second))

		var decoded []schema.ValidationReport
		require.NoError(t, json.Unmarshal([]byte(readFile(t, cfg.OutputFile)), &decoded))
		assert.Equal(t, sampleReports(), decoded)
	})

	t.Run("parquet", func(t *testing.T) {
		cfg := outputConfig(t, schema.ParquetOut, "out.parquet")
		require.NoError(t, ow.WriteValidation(sampleReports(), cfg, time.Second))
		assert.FileExists(t, cfg.OutputFile)
	})
}

func TestWriteIndicators(t *testing.T) {
	ow := NewOutWriter()

	t.Run("text", func(t *testing.T) {
		cfg := outputConfig(t, schema.TextOut, "out.txt")
		require.NoError(t, ow.WriteIndicators(sampleModel(), cfg))

		out := readFile(t, cfg.OutputFile)
		assert.Contains(t, out, "Food Security Indicators")
		assert.Contains(t, out, "RCSI: Reduced Coping Strategy Index")
		assert.Contains(t, out, "Formula: Score = rCSILessQlty*1 + rCSIBorrow*2")
		assert.Contains(t, out, "Variant standard (default): Minimal [0, 4), Moderate [4, 18.5), Severe [18.5, inf)")
	})

	t.Run("csv", func(t *testing.T) {
		cfg := outputConfig(t, schema.CSVOut, "out.csv")
		require.NoError(t, ow.WriteIndicators(sampleModel(), cfg))

		lines := strings.Split(strings.TrimSpace(readFile(t, cfg.OutputFile)), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[1], "rcsi,Reduced Coping Strategy Index,standard,true,4,18.5,Minimal|Moderate|Severe,"))
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeJSON(&buf, sampleModel()))

		cfg := outputConfig(t, schema.JSONOut, "out.json")
		require.NoError(t, ow.WriteIndicators(sampleModel(), cfg))
		assert.JSONEq(t, buf.String(), readFile(t, cfg.OutputFile))
	})

	t.Run("parquet unsupported", func(t *testing.T) {
		cfg := outputConfig(t, schema.ParquetOut, "out.parquet")
		assert.ErrorIs(t, ow.WriteIndicators(sampleModel(), cfg), ErrParquetUnsupported)
	})
}
