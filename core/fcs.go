package core

import "github.com/huangsam/foodsec/schema"

// NewFoodConsumptionScore returns the FCS indicator. Its default variant is
// the high sugar/oil table.
func NewFoodConsumptionScore() Indicator {
	return &weightedIndicator{
		key:            schema.FCSKey,
		name:           "Food Consumption Score",
		description:    "Composite score based on dietary diversity, food consumption frequency, and relative nutritional value",
		reference:      "https://resources.vam.wfp.org/data-analysis/quantitative/food-security/food-consumption-score",
		columns:        schema.FCSColumns(),
		thresholds:     schema.FCSThresholds(),
		labels:         schema.LabelsFor(schema.FCSKey),
		defaultVariant: schema.HighSugarOilVariant,
	}
}

// FCSVariant maps the high sugar/oil consumption flag to an FCS variant.
func FCSVariant(highSugarOil bool) schema.Variant {
	if highSugarOil {
		return schema.HighSugarOilVariant
	}
	return schema.StandardVariant
}
