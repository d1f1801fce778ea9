package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/schema"
	"golang.org/x/term"
)

// writeWithFile opens the configured output (stdout when empty), runs the
// writer against it and reports where the file went.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON encodes data with two-space indentation.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader writes the header and then lets writeRows fill in the body.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return writeRows(csvWriter)
}

// createFormatters creates the formatter closures shared by every output type.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		if math.IsNaN(v) {
			return "NaN"
		}
		return fmt.Sprintf("%.*f", precision, v)
	}
	return fmtFloat, intFmt
}

// formatCounts renders label counts in the indicator's label order, e.g.
// "Poor=1, Borderline=0, Acceptable=2". Unclassified rows come last when present.
func formatCounts(key schema.IndicatorKey, counts map[schema.Label]int) string {
	var parts []string
	for _, label := range schema.LabelsFor(key) {
		if label == schema.Unclassified {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%d", label, counts[label]))
	}
	if n := counts[schema.Unclassified]; n > 0 {
		parts = append(parts, fmt.Sprintf("%s=%d", contract.UnclassifiedText, n))
	}
	return strings.Join(parts, ", ")
}

// labelText picks colored or plain label text for tables.
func labelText(label schema.Label, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(label)
	}
	return contract.GetPlainLabel(label)
}

// getMaxTablePathWidth calculates the maximum width for dataset paths in table
// output based on terminal width.
func getMaxTablePathWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth <= 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // CI and pipes
		} else {
			termWidth = detectedWidth
		}
	}

	// Indicator + Status + Message columns with borders and padding
	baseWidth := 60

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
