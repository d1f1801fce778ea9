// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/foodsec/dataset"
	"github.com/huangsam/foodsec/schema"
)

// DatasetLoader reads survey datasets.
// This allows the core logic to be tested without files on disk.
type DatasetLoader interface {
	// Load reads the dataset at path. An empty format is inferred from the extension.
	Load(ctx context.Context, path string, format schema.InputFormat) (dataset.Table, error)
}

// ResultWriter renders the outcome of each command.
// This allows the output layer to be mocked for testing.
type ResultWriter interface {
	WriteValidation(reports []schema.ValidationReport, cfg *Config, duration time.Duration) error
	WriteResults(results []schema.IndicatorResult, cfg *Config, duration time.Duration) error
	WriteIndicators(model schema.IndicatorsRenderModel, cfg *Config) error
}
