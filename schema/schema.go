// Package schema has models and constant tables for all parts of foodsec.
package schema

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ColumnWeight pairs a required survey column with its weight in the sum.
type ColumnWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// ColumnWeights is an ordered list of required columns. The order is the
// summation order and the order offending columns are reported in.
type ColumnWeights []ColumnWeight

// Names returns the column names in order.
func (cw ColumnWeights) Names() []string {
	names := make([]string, len(cw))
	for i, c := range cw {
		names[i] = c.Name
	}
	return names
}

// Clone returns an independent copy.
func (cw ColumnWeights) Clone() ColumnWeights {
	return slices.Clone(cw)
}

// Formula renders the weighted sum, e.g. "FCSStap*2 + FCSPulse*3".
func (cw ColumnWeights) Formula() string {
	parts := make([]string, len(cw))
	for i, c := range cw {
		parts[i] = fmt.Sprintf("%s*%g", c.Name, c.Weight)
	}
	return strings.Join(parts, " + ")
}

// ThresholdPair holds the two cutoffs splitting scores into three bins:
// [0, Low), [Low, High) and [High, +Inf).
type ThresholdPair struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Bins renders the three half-open intervals of the pair.
func (p ThresholdPair) Bins() [3]string {
	return [3]string{
		fmt.Sprintf("[0, %g)", p.Low),
		fmt.Sprintf("[%g, %g)", p.Low, p.High),
		fmt.Sprintf("[%g, inf)", p.High),
	}
}

// ThresholdTable maps each variant to its cutoffs.
type ThresholdTable map[Variant]ThresholdPair

// Clone returns an independent copy.
func (tt ThresholdTable) Clone() ThresholdTable {
	return maps.Clone(tt)
}

// Variants returns the variant names sorted alphabetically.
func (tt ThresholdTable) Variants() []Variant {
	out := make([]Variant, 0, len(tt))
	for v := range tt {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Labels are the three ordered categories of an indicator, lowest bin first.
type Labels [3]Label

// RespondentResult is the score and category of one survey row.
type RespondentResult struct {
	Source    string       `json:"source"`
	Row       int          `json:"row"`
	Indicator IndicatorKey `json:"indicator"`
	Variant   Variant      `json:"variant"`
	Score     float64      `json:"score"`
	Label     Label        `json:"label"`
}

// IndicatorResult holds everything computed for one (dataset, indicator) job.
type IndicatorResult struct {
	Source      string             `json:"source"`
	Indicator   IndicatorKey       `json:"indicator"`
	Name        string             `json:"name"`
	Variant     Variant            `json:"variant"`
	Rows        int                `json:"rows"`
	Counts      map[Label]int      `json:"counts,omitempty"`
	Respondents []RespondentResult `json:"respondents"`
	Error       string             `json:"error,omitempty"`
}

// ValidationReport is the outcome of validating one dataset for one indicator.
type ValidationReport struct {
	Source    string       `json:"source"`
	Indicator IndicatorKey `json:"indicator"`
	Name      string       `json:"name"`
	Valid     bool         `json:"valid"`
	Message   string       `json:"message"`
	Columns   []string     `json:"columns,omitempty"`
}

// ThresholdDefinition describes one variant of an indicator for display.
type ThresholdDefinition struct {
	Variant Variant   `json:"variant"`
	Default bool      `json:"default"`
	Low     float64   `json:"low"`
	High    float64   `json:"high"`
	Bins    [3]string `json:"bins"`
}

// IndicatorDefinition contains the processed data needed for displaying an indicator.
type IndicatorDefinition struct {
	Key         IndicatorKey          `json:"key"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Reference   string                `json:"reference"`
	Columns     ColumnWeights         `json:"columns"`
	Formula     string                `json:"formula"`
	Labels      Labels                `json:"labels"`
	Thresholds  []ThresholdDefinition `json:"thresholds"`
	Range       [2]float64            `json:"range"`
}

// IndicatorsRenderModel contains all indicator definitions plus a title.
type IndicatorsRenderModel struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Indicators  []IndicatorDefinition `json:"indicators"`
}
