package core

import "github.com/huangsam/foodsec/schema"

// NewReducedCopingStrategyIndex returns the rCSI indicator. It has a single
// standard threshold table.
func NewReducedCopingStrategyIndex() Indicator {
	return &weightedIndicator{
		key:            schema.RCSIKey,
		name:           "Reduced Coping Strategy Index",
		description:    "Index measuring frequency and severity of food consumption behaviors due to food shortage",
		reference:      "https://resources.vam.wfp.org/data-analysis/quantitative/food-security/reduced-coping-strategies-index",
		columns:        schema.RCSIColumns(),
		thresholds:     schema.RCSIThresholds(),
		labels:         schema.LabelsFor(schema.RCSIKey),
		defaultVariant: schema.StandardVariant,
	}
}
