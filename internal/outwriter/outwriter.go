// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/schema"
)

var _ contract.ResultWriter = &OutWriter{} // Compile-time check

// OutWriter renders validation reports, indicator results and indicator
// definitions in the configured output format.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteValidation prints validation reports.
func (ow *OutWriter) WriteValidation(reports []schema.ValidationReport, cfg *contract.Config, duration time.Duration) error {
	return PrintValidationReports(reports, cfg, duration)
}

// WriteResults prints per-respondent scores and labels.
func (ow *OutWriter) WriteResults(results []schema.IndicatorResult, cfg *contract.Config, duration time.Duration) error {
	return PrintIndicatorResults(results, cfg, duration)
}

// WriteIndicators prints the indicator definitions.
func (ow *OutWriter) WriteIndicators(model schema.IndicatorsRenderModel, cfg *contract.Config) error {
	return PrintIndicatorDefinitions(model, cfg)
}
