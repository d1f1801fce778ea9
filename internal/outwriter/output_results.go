package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/internal/parquet"
	"github.com/huangsam/foodsec/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// ErrParquetUnsupported is returned for views that have no Parquet layout.
var ErrParquetUnsupported = errors.New("parquet output is not supported for this command")

// respondentHeader is the column layout shared by CSV and Parquet results.
var respondentHeader = []string{"source", "row", "indicator", "variant", "score", "label"}

// PrintIndicatorResults outputs per-respondent results, dispatching on the configured format.
func PrintIndicatorResults(results []schema.IndicatorResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultsCSV(w, results, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		records := parquet.RespondentRecordsFrom(results, time.Now().UTC())
		if err := parquet.WriteRespondentsParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultsText(w, results, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
	return nil
}

// writeResultsCSV writes one line per respondent. Failed jobs have no rows.
func writeResultsCSV(w io.Writer, results []schema.IndicatorResult, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, respondentHeader, func(cw *csv.Writer) error {
		for _, res := range results {
			for _, r := range res.Respondents {
				rec := []string{
					r.Source,
					strconv.Itoa(r.Row),
					string(r.Indicator),
					string(r.Variant),
					fmtFloat(r.Score),
					string(r.Label),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeResultsText prints one table per (dataset, indicator) result.
func writeResultsText(w io.Writer, results []schema.IndicatorResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	failed := 0
	for _, res := range results {
		source := contract.TruncatePath(res.Source, getMaxTablePathWidth(cfg))
		if _, err := fmt.Fprintf(w, "📊 %s (%s) for %s\n", res.Name, res.Variant, source); err != nil {
			return err
		}
		if res.Error != "" {
			failed++
			if _, err := fmt.Fprintf(w, "   ❌ %s\n\n", res.Error); err != nil {
				return err
			}
			continue
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Row", "Score", "Label"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		shown := res.Respondents
		if cfg.ResultLimit > 0 && len(shown) > cfg.ResultLimit {
			shown = shown[:cfg.ResultLimit]
		}
		data := make([][]string, 0, len(shown))
		for _, r := range shown {
			data = append(data, []string{
				fmt.Sprintf(intFmt, r.Row),
				fmtFloat(r.Score),
				labelText(r.Label, cfg),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "Showing %d of %d respondents (%s)\n\n", len(shown), res.Rows, formatCounts(res.Indicator, res.Counts)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Calculated %d indicator results (%d failed) in %v with %d workers\n", len(results), failed, duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}
