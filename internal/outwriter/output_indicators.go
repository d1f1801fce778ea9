package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/schema"
)

// getDisplayNameForIndicator returns the display name with emoji for an indicator.
func getDisplayNameForIndicator(def schema.IndicatorDefinition) string {
	switch def.Key {
	case schema.FCSKey:
		return "🍲 " + strings.ToUpper(string(def.Key))
	case schema.RCSIKey:
		return "🆘 " + strings.ToUpper(string(def.Key))
	default:
		return strings.ToUpper(string(def.Key))
	}
}

// PrintIndicatorDefinitions displays the definitions of all indicators.
// Nothing is loaded from disk.
func PrintIndicatorDefinitions(model schema.IndicatorsRenderModel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIndicatorsCSV(w, model)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return ErrParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIndicatorsText(w, model)
		}, "Wrote text")
	}
}

// writeIndicatorsText displays indicators in human-readable text format.
func writeIndicatorsText(w io.Writer, model schema.IndicatorsRenderModel) error {
	if _, err := fmt.Fprintf(w, "🌾 %s\n%s\n\n", model.Title, strings.Repeat("=", len(model.Title)+3)); err != nil {
		return err
	}
	if model.Description != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", model.Description); err != nil {
			return err
		}
	}

	for _, def := range model.Indicators {
		if _, err := fmt.Fprintf(w, "%s: %s\n", getDisplayNameForIndicator(def), def.Name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   %s\n", def.Description); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Columns: %s\n", strings.Join(def.Columns.Names(), ", ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: Score = %s\n", def.Formula); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Inputs: %g-%g per column\n", def.Range[0], def.Range[1]); err != nil {
			return err
		}
		for _, th := range def.Thresholds {
			marker := ""
			if th.Default {
				marker = " (default)"
			}
			if _, err := fmt.Fprintf(w, "   Variant %s%s: %s %s, %s %s, %s %s\n", th.Variant, marker,
				def.Labels[0], th.Bins[0], def.Labels[1], th.Bins[1], def.Labels[2], th.Bins[2]); err != nil {
				return err
			}
		}
		if def.Reference != "" {
			if _, err := fmt.Fprintf(w, "   Reference: %s\n", def.Reference); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writeIndicatorsCSV writes one line per (indicator, variant).
func writeIndicatorsCSV(w io.Writer, model schema.IndicatorsRenderModel) error {
	header := []string{"indicator", "name", "variant", "default", "low", "high", "labels", "formula"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, def := range model.Indicators {
			labels := fmt.Sprintf("%s|%s|%s", def.Labels[0], def.Labels[1], def.Labels[2])
			for _, th := range def.Thresholds {
				rec := []string{
					string(def.Key),
					def.Name,
					string(th.Variant),
					fmt.Sprintf("%t", th.Default),
					fmt.Sprintf("%g", th.Low),
					fmt.Sprintf("%g", th.High),
					labels,
					def.Formula,
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
