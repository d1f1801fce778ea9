// Package core has core logic for validating, calculating and classifying
// food-security indicators.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/foodsec/dataset"
	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/schema"
)

// Errors reported once every job has been rendered.
var (
	ErrValidationFailed  = errors.New("one or more datasets failed validation")
	ErrCalculationFailed = errors.New("one or more indicators could not be calculated")
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader, writer contract.ResultWriter) error

// ExecuteValidate validates every input against every selected indicator.
// It serves as the main entry point for the 'validate' command.
func ExecuteValidate(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader, writer contract.ResultWriter) error {
	start := time.Now()
	jobs, err := buildJobs(ctx, cfg, loader)
	if err != nil {
		return err
	}
	reports := ValidateBatch(ctx, jobs, cfg.Workers)
	if err := writer.WriteValidation(reports, cfg, time.Since(start)); err != nil {
		return err
	}
	for _, r := range reports {
		if !r.Valid {
			return ErrValidationFailed
		}
	}
	return ctx.Err()
}

// ExecuteCalculate scores and classifies every input for every selected indicator.
// It serves as the main entry point for the 'calculate' command.
func ExecuteCalculate(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader, writer contract.ResultWriter) error {
	start := time.Now()
	jobs, err := buildJobs(ctx, cfg, loader)
	if err != nil {
		return err
	}
	batch := RunBatch(ctx, jobs, cfg.Workers)

	results := make([]schema.IndicatorResult, len(batch))
	failed := 0
	for i, jr := range batch {
		results[i] = BuildResult(jr)
		if jr.Err != nil {
			failed++
			contract.LogError(fmt.Sprintf("Error calculating %s for %s", jr.Indicator.Name(), jr.Source), jr.Err)
		}
	}
	if err := writer.WriteResults(results, cfg, time.Since(start)); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCalculationFailed, failed, len(batch))
	}
	return nil
}

// ExecuteClassify classifies an existing score column of each input.
// Exactly one indicator must be selected.
func ExecuteClassify(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader, writer contract.ResultWriter) error {
	start := time.Now()
	if cfg.ScoreColumn == "" {
		return errors.New("--score-column is required")
	}
	if len(cfg.Indicators) != 1 {
		return fmt.Errorf("classify needs exactly one indicator (received %d)", len(cfg.Indicators))
	}
	ind, err := Lookup(cfg.Indicators[0])
	if err != nil {
		return err
	}
	variant := VariantFor(ind, cfg)

	var results []schema.IndicatorResult
	for _, path := range cfg.Inputs {
		table, err := loader.Load(ctx, path, cfg.InputFormat)
		if err != nil {
			return err
		}
		scores, err := ScoresFromColumn(table, cfg.ScoreColumn)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		classes, err := ind.Classify(scores, variant)
		if err != nil {
			return err
		}
		results = append(results, BuildResult(JobResult{
			Job:     Job{Source: path, Table: table, Indicator: ind, Variant: variant},
			Scores:  scores,
			Classes: classes,
		}))
	}
	return writer.WriteResults(results, cfg, time.Since(start))
}

// ExecuteIndicators displays the definitions of the selected indicators.
// This is a static display that does not read any dataset.
func ExecuteIndicators(_ context.Context, cfg *contract.Config, _ contract.DatasetLoader, writer contract.ResultWriter) error {
	model := schema.IndicatorsRenderModel{
		Title:       "Food Security Indicators",
		Description: "Weighted sums of survey columns classified with published cutoffs",
	}
	for _, key := range cfg.Indicators {
		ind, err := Lookup(key)
		if err != nil {
			return err
		}
		model.Indicators = append(model.Indicators, Describe(ind))
	}
	return writer.WriteIndicators(model, cfg)
}

// VariantFor picks the threshold variant of ind for this run. An explicit
// variant the indicator lacks falls back to its default when several
// indicators are selected, so "--variant standard" works with "all".
func VariantFor(ind Indicator, cfg *contract.Config) schema.Variant {
	if cfg.Variant != "" {
		if _, ok := ind.Thresholds()[cfg.Variant]; ok || len(cfg.Indicators) <= 1 {
			return cfg.Variant
		}
		return ind.DefaultVariant()
	}
	if ind.Key() == schema.FCSKey {
		return FCSVariant(cfg.HighSugarOil)
	}
	return ind.DefaultVariant()
}

// ScoresFromColumn reads a numeric column as scores. Nulls become NaN.
func ScoresFromColumn(t dataset.Table, name string) (Scores, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("score column %q not found", name)
	}
	if !col.Kind().IsNumeric() {
		return nil, fmt.Errorf("score column %q is not numeric", name)
	}
	scores := make(Scores, col.Len())
	for i := range scores {
		scores[i] = col.Float(i)
	}
	return scores, nil
}

// buildJobs loads every input and pairs it with each selected indicator.
func buildJobs(ctx context.Context, cfg *contract.Config, loader contract.DatasetLoader) ([]Job, error) {
	indicators := make([]Indicator, 0, len(cfg.Indicators))
	for _, key := range cfg.Indicators {
		ind, err := Lookup(key)
		if err != nil {
			return nil, err
		}
		indicators = append(indicators, ind)
	}

	var jobs []Job
	for _, path := range cfg.Inputs {
		table, err := loader.Load(ctx, path, cfg.InputFormat)
		if err != nil {
			return nil, err
		}
		contract.Logger().Debug().Str("source", path).Int("rows", table.Rows()).Msg("loaded dataset")
		for _, ind := range indicators {
			jobs = append(jobs, Job{Source: path, Table: table, Indicator: ind, Variant: VariantFor(ind, cfg)})
		}
	}
	return jobs, nil
}
