package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/internal/parquet"
	"github.com/huangsam/foodsec/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintValidationReports outputs validation reports, dispatching on the configured format.
func PrintValidationReports(reports []schema.ValidationReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, reports)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeValidationCSV(w, reports)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteValidationParquet(parquet.ValidationRecordsFrom(reports), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeValidationTable(w, reports, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

func writeValidationCSV(w io.Writer, reports []schema.ValidationReport) error {
	header := []string{"source", "indicator", "valid", "message", "columns"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range reports {
			rec := []string{
				r.Source,
				string(r.Indicator),
				strconv.FormatBool(r.Valid),
				r.Message,
				strings.Join(r.Columns, "|"),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeValidationTable generates and writes the human-readable table.
func writeValidationTable(w io.Writer, reports []schema.ValidationReport, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Source", "Indicator", "Status", "Message"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	passed := 0
	var data [][]string
	for _, r := range reports {
		status := "FAIL"
		if r.Valid {
			status = "PASS"
			passed++
		}
		if cfg.UseColors {
			if r.Valid {
				status = contract.LowColor.Sprint(status)
			} else {
				status = contract.HighColor.Sprint(status)
			}
		}
		data = append(data, []string{
			contract.TruncatePath(r.Source, getMaxTablePathWidth(cfg)),
			string(r.Indicator),
			status,
			r.Message,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d of %d checks passed\n", passed, len(reports)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Validation completed in %v with %d workers\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}
