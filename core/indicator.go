package core

import (
	"fmt"
	"math"

	"github.com/huangsam/foodsec/dataset"
	"github.com/huangsam/foodsec/schema"
)

// ValidMessage is returned by Validate when every check passes.
const ValidMessage = "All validations passed successfully"

// Scores holds one indicator score per table row.
type Scores []float64

// Classes holds one label per score.
type Classes []schema.Label

// Indicator is a weighted-sum food-security indicator with published cutoffs.
type Indicator interface {
	Key() schema.IndicatorKey
	Name() string
	Description() string
	Reference() string
	Columns() schema.ColumnWeights
	Thresholds() schema.ThresholdTable
	Labels() schema.Labels
	DefaultVariant() schema.Variant

	// Validate runs the column checks in order and stops at the first failure.
	Validate(t dataset.Table) (bool, string)

	// Calculate returns the weighted sum for each row, or a *ValidationError.
	Calculate(t dataset.Table) (Scores, error)

	// Classify maps scores to labels using the cutoffs of variant.
	// An empty variant selects DefaultVariant.
	Classify(scores Scores, variant schema.Variant) (Classes, error)
}

// weightedIndicator implements Indicator on top of constant tables.
type weightedIndicator struct {
	key            schema.IndicatorKey
	name           string
	description    string
	reference      string
	columns        schema.ColumnWeights
	thresholds     schema.ThresholdTable
	labels         schema.Labels
	defaultVariant schema.Variant
}

var _ Indicator = &weightedIndicator{}

func (w *weightedIndicator) Key() schema.IndicatorKey          { return w.key }
func (w *weightedIndicator) Name() string                      { return w.name }
func (w *weightedIndicator) Description() string               { return w.description }
func (w *weightedIndicator) Reference() string                 { return w.reference }
func (w *weightedIndicator) Columns() schema.ColumnWeights     { return w.columns.Clone() }
func (w *weightedIndicator) Thresholds() schema.ThresholdTable { return w.thresholds.Clone() }
func (w *weightedIndicator) Labels() schema.Labels             { return w.labels }
func (w *weightedIndicator) DefaultVariant() schema.Variant    { return w.defaultVariant }

func (w *weightedIndicator) check(t dataset.Table) *ValidationError {
	return Check(t, w.columns.Names())
}

func (w *weightedIndicator) Validate(t dataset.Table) (bool, string) {
	if verr := w.check(t); verr != nil {
		return false, verr.Error()
	}
	return true, ValidMessage
}

func (w *weightedIndicator) Calculate(t dataset.Table) (Scores, error) {
	if verr := w.check(t); verr != nil {
		return nil, verr
	}
	scores := make(Scores, t.Rows())
	for _, cw := range w.columns {
		col, _ := t.Column(cw.Name)
		for i := range scores {
			scores[i] += col.Float(i) * cw.Weight
		}
	}
	return scores, nil
}

func (w *weightedIndicator) Classify(scores Scores, variant schema.Variant) (Classes, error) {
	pair, err := w.thresholdFor(variant)
	if err != nil {
		return nil, err
	}
	classes := make(Classes, len(scores))
	for i, s := range scores {
		classes[i] = classify(s, pair, w.labels)
	}
	return classes, nil
}

// ResolveVariant returns the variant Classify would use for v.
func ResolveVariant(ind Indicator, v schema.Variant) schema.Variant {
	if v == "" {
		return ind.DefaultVariant()
	}
	return v
}

func (w *weightedIndicator) thresholdFor(variant schema.Variant) (schema.ThresholdPair, error) {
	if variant == "" {
		variant = w.defaultVariant
	}
	pair, ok := w.thresholds[variant]
	if !ok {
		return schema.ThresholdPair{}, fmt.Errorf("%w %q for %s", ErrUnknownVariant, variant, w.key)
	}
	return pair, nil
}

// classify places s into [0, Low), [Low, High) or [High, +Inf).
func classify(s float64, pair schema.ThresholdPair, labels schema.Labels) schema.Label {
	switch {
	case math.IsNaN(s) || s < 0:
		return schema.Unclassified
	case s < pair.Low:
		return labels[0]
	case s < pair.High:
		return labels[1]
	default:
		return labels[2]
	}
}
