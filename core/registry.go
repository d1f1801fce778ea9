package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/foodsec/schema"
)

// builtins holds the indicators in display order. Indicators are stateless.
var builtins = []Indicator{
	NewFoodConsumptionScore(),
	NewReducedCopingStrategyIndex(),
}

// Indicators returns all built-in indicators in display order.
func Indicators() []Indicator {
	out := make([]Indicator, len(builtins))
	copy(out, builtins)
	return out
}

// Lookup returns the built-in indicator with the given key.
func Lookup(key schema.IndicatorKey) (Indicator, error) {
	for _, ind := range builtins {
		if ind.Key() == key {
			return ind, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownIndicator, key)
}

// ParseIndicatorKeys parses a comma-separated list such as "fcs,rcsi".
// "all" or an empty string selects every indicator. Duplicates are dropped.
func ParseIndicatorKeys(s string) ([]schema.IndicatorKey, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "all" {
		return append([]schema.IndicatorKey(nil), schema.AllIndicatorKeys...), nil
	}
	var keys []schema.IndicatorKey
	seen := make(map[schema.IndicatorKey]struct{})
	for part := range strings.SplitSeq(s, ",") {
		key := schema.IndicatorKey(strings.TrimSpace(part))
		if key == "" {
			continue
		}
		if _, err := Lookup(key); err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w %q", ErrUnknownIndicator, s)
	}
	return keys, nil
}

// Describe builds the display definition of an indicator.
func Describe(ind Indicator) schema.IndicatorDefinition {
	columns := ind.Columns()
	def := schema.IndicatorDefinition{
		Key:         ind.Key(),
		Name:        ind.Name(),
		Description: ind.Description(),
		Reference:   ind.Reference(),
		Columns:     columns,
		Formula:     columns.Formula(),
		Labels:      ind.Labels(),
		Range:       [2]float64{DefaultMinValue, DefaultMaxValue},
	}
	thresholds := ind.Thresholds()
	for _, v := range thresholds.Variants() {
		pair := thresholds[v]
		def.Thresholds = append(def.Thresholds, schema.ThresholdDefinition{
			Variant: v,
			Default: v == ind.DefaultVariant(),
			Low:     pair.Low,
			High:    pair.High,
			Bins:    pair.Bins(),
		})
	}
	return def
}
