// Package parquet provides data structures and functions for exporting foodsec
// results to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/foodsec/schema"
	"github.com/parquet-go/parquet-go"
)

// RespondentRecord is one scored survey row.
type RespondentRecord struct {
	// Source is the dataset the row came from
	Source string `parquet:"source,snappy"`

	// Row is the 1-based row number within the source
	Row int32 `parquet:"row,snappy"`

	// Indicator is the indicator key, e.g. "fcs"
	Indicator string `parquet:"indicator,snappy"`

	// Variant is the threshold table used for the label
	Variant string `parquet:"variant,snappy"`

	// Score is the weighted sum
	Score float64 `parquet:"score,snappy"`

	// Label is the category (nullable when the score falls in no bin)
	Label *string `parquet:"label,optional,snappy"`

	// ComputedAt is when the run produced the record
	ComputedAt time.Time `parquet:"computed_at,snappy"`
}

// ValidationRecord is the validation outcome of one (dataset, indicator) pair.
type ValidationRecord struct {
	Source    string `parquet:"source,snappy"`
	Indicator string `parquet:"indicator,snappy"`
	Valid     bool   `parquet:"valid,snappy"`
	Message   string `parquet:"message,snappy"`

	// Columns lists offending columns separated by commas (nullable)
	Columns *string `parquet:"columns,optional,snappy"`
}

// RespondentRecordsFrom flattens indicator results into records. Failed jobs
// contribute no rows.
func RespondentRecordsFrom(results []schema.IndicatorResult, computedAt time.Time) []RespondentRecord {
	var out []RespondentRecord
	for _, res := range results {
		for _, r := range res.Respondents {
			rec := RespondentRecord{
				Source:     r.Source,
				Row:        int32(r.Row),
				Indicator:  string(r.Indicator),
				Variant:    string(r.Variant),
				Score:      r.Score,
				ComputedAt: computedAt,
			}
			if r.Label != schema.Unclassified {
				label := string(r.Label)
				rec.Label = &label
			}
			out = append(out, rec)
		}
	}
	return out
}

// ValidationRecordsFrom converts validation reports into records.
func ValidationRecordsFrom(reports []schema.ValidationReport) []ValidationRecord {
	out := make([]ValidationRecord, len(reports))
	for i, r := range reports {
		out[i] = ValidationRecord{
			Source:    r.Source,
			Indicator: string(r.Indicator),
			Valid:     r.Valid,
			Message:   r.Message,
		}
		if len(r.Columns) > 0 {
			cols := strings.Join(r.Columns, ",")
			out[i].Columns = &cols
		}
	}
	return out
}

// WriteRespondentsParquet writes a slice of RespondentRecord structs to a Parquet file.
func WriteRespondentsParquet(data []RespondentRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteValidationParquet writes a slice of ValidationRecord structs to a Parquet file.
func WriteValidationParquet(data []ValidationRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet creates outputPath and writes data with a schema inferred from T's struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
