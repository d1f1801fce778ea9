package contract

import (
	"context"
	"time"

	"github.com/huangsam/foodsec/dataset"
	"github.com/huangsam/foodsec/schema"
	"github.com/stretchr/testify/mock"
)

// MockDatasetLoader is a mock implementation of DatasetLoader for testing.
type MockDatasetLoader struct {
	mock.Mock
}

var _ DatasetLoader = &MockDatasetLoader{} // Compile-time check

// Load implements the DatasetLoader interface.
func (m *MockDatasetLoader) Load(ctx context.Context, path string, format schema.InputFormat) (dataset.Table, error) {
	args := m.Called(ctx, path, format)
	table, _ := args.Get(0).(dataset.Table)
	return table, args.Error(1)
}

// MockResultWriter is a mock implementation of ResultWriter for testing.
type MockResultWriter struct {
	mock.Mock
}

var _ ResultWriter = &MockResultWriter{} // Compile-time check

// WriteValidation implements the ResultWriter interface.
func (m *MockResultWriter) WriteValidation(reports []schema.ValidationReport, cfg *Config, duration time.Duration) error {
	args := m.Called(reports, cfg, duration)
	return args.Error(0)
}

// WriteResults implements the ResultWriter interface.
func (m *MockResultWriter) WriteResults(results []schema.IndicatorResult, cfg *Config, duration time.Duration) error {
	args := m.Called(results, cfg, duration)
	return args.Error(0)
}

// WriteIndicators implements the ResultWriter interface.
func (m *MockResultWriter) WriteIndicators(model schema.IndicatorsRenderModel, cfg *Config) error {
	args := m.Called(model, cfg)
	return args.Error(0)
}
