package contract

import (
	"errors"
	"testing"

	"github.com/huangsam/foodsec/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseKeys is a stand-in for core.ParseIndicatorKeys.
func parseKeys(s string) ([]schema.IndicatorKey, error) {
	switch s {
	case "", "all":
		return []schema.IndicatorKey{schema.FCSKey, schema.RCSIKey}, nil
	case "fcs":
		return []schema.IndicatorKey{schema.FCSKey}, nil
	case "rcsi":
		return []schema.IndicatorKey{schema.RCSIKey}, nil
	default:
		return nil, errors.New("unknown indicator")
	}
}

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Inputs:    []string{"survey.csv"},
		Indicator: "all",
		Output:    "text",
		Limit:     0,
		Workers:   4,
		Precision: 1,
		Color:     "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "single indicator", mutate: func(in *ConfigRawInput) { in.Indicator = "fcs" }},
		{name: "unknown indicator", mutate: func(in *ConfigRawInput) { in.Indicator = "hdds" }, expectError: true},
		{name: "standard variant", mutate: func(in *ConfigRawInput) { in.Variant = "standard" }},
		{name: "invalid variant", mutate: func(in *ConfigRawInput) { in.Variant = "urban" }, expectError: true},
		{name: "invalid high sugar oil", mutate: func(in *ConfigRawInput) { in.HighSugarOil = "maybe" }, expectError: true},
		{name: "negative limit", mutate: func(in *ConfigRawInput) { in.Limit = -1 }, expectError: true},
		{name: "limit too large", mutate: func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, expectError: true},
		{name: "zero workers", mutate: func(in *ConfigRawInput) { in.Workers = 0 }, expectError: true},
		{name: "precision too high", mutate: func(in *ConfigRawInput) { in.Precision = 3 }, expectError: true},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "parquet without file", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{name: "parquet with file", mutate: func(in *ConfigRawInput) { in.Output = "parquet"; in.OutputFile = "out.parquet" }},
		{name: "invalid input format", mutate: func(in *ConfigRawInput) { in.InputFormat = "xlsx" }, expectError: true},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "sometimes" }, expectError: true},
		{name: "invalid log level", mutate: func(in *ConfigRawInput) { in.LogLevel = "loud" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input, parseKeys)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput(), parseKeys))

	assert.Equal(t, []schema.IndicatorKey{schema.FCSKey, schema.RCSIKey}, cfg.Indicators)
	assert.Equal(t, schema.Variant(""), cfg.Variant)
	assert.True(t, cfg.HighSugarOil)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.AutoInput, cfg.InputFormat)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidateHighSugarOil(t *testing.T) {
	input := validInput()
	input.HighSugarOil = "no"
	input.Variant = "HIGH_SUGAR_OIL"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input, parseKeys))
	assert.False(t, cfg.HighSugarOil)
	assert.Equal(t, schema.HighSugarOilVariant, cfg.Variant)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Inputs: []string{"a.csv"}, Indicators: []schema.IndicatorKey{schema.FCSKey}}
	clone := cfg.Clone()
	clone.Inputs[0] = "b.csv"
	clone.Indicators[0] = schema.RCSIKey
	assert.Equal(t, "a.csv", cfg.Inputs[0])
	assert.Equal(t, schema.FCSKey, cfg.Indicators[0])
}
