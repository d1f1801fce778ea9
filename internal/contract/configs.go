package contract

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/huangsam/foodsec/schema"
	"github.com/rs/zerolog"
)

// Default values for configuration.
const (
	DefaultResultLimit = 0 // 0 shows every respondent
	MaxResultLimit     = 100000
	DefaultPrecision   = 1
	DefaultAddr        = ":8080"
	DefaultLogLevel    = "info"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	Inputs       []string
	InputFormat  schema.InputFormat
	Indicators   []schema.IndicatorKey
	Variant      schema.Variant // empty = indicator default
	HighSugarOil bool           // FCS variant when Variant is empty
	ScoreColumn  string
	ResultLimit  int
	Workers      int
	Precision    int
	Output       schema.OutputMode
	OutputFile   string
	Width        int // Terminal width override (0 = auto-detect)
	UseColors    bool
	LogLevel     zerolog.Level
	Addr         string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	Inputs []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Indicator    string `mapstructure:"indicator"`
	Variant      string `mapstructure:"variant"`
	HighSugarOil string `mapstructure:"high-sugar-oil"`
	InputFormat  string `mapstructure:"input-format"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Limit        int    `mapstructure:"limit"`
	Workers      int    `mapstructure:"workers"`
	Precision    int    `mapstructure:"precision"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	LogLevel     string `mapstructure:"log-level"`

	// --- Fields from classifyCmd.Flags() ---
	ScoreColumn string `mapstructure:"score-column"`

	// --- Fields from serveCmd.Flags() ---
	Addr string `mapstructure:"addr"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Inputs != nil {
		clone.Inputs = append([]string(nil), c.Inputs...)
	}
	if c.Indicators != nil {
		clone.Indicators = append([]schema.IndicatorKey(nil), c.Indicators...)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, parseIndicators func(string) ([]schema.IndicatorKey, error)) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processIndicators(cfg, input, parseIndicators); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Inputs = input.Inputs
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.ScoreColumn = strings.TrimSpace(input.ScoreColumn)
	cfg.Addr = input.Addr
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	cfg.InputFormat = schema.InputFormat(strings.ToLower(input.InputFormat))
	if _, ok := schema.ValidInputFormats[cfg.InputFormat]; !ok {
		return fmt.Errorf("invalid input format '%s'. must be csv, parquet, arrow", input.InputFormat)
	}

	// --- 4. Logging ---
	level := input.LogLevel
	if level == "" {
		level = DefaultLogLevel
	}
	cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", input.LogLevel, err)
	}

	return nil
}

// processIndicators resolves the indicator selection and the threshold variant.
func processIndicators(cfg *Config, input *ConfigRawInput, parseIndicators func(string) ([]schema.IndicatorKey, error)) error {
	keys, err := parseIndicators(input.Indicator)
	if err != nil {
		return fmt.Errorf("invalid --indicator value: %w", err)
	}
	cfg.Indicators = keys

	cfg.Variant = schema.Variant(strings.ToLower(strings.TrimSpace(input.Variant)))
	switch cfg.Variant {
	case "", schema.StandardVariant, schema.HighSugarOilVariant:
	default:
		return fmt.Errorf("invalid variant '%s'. must be standard or high_sugar_oil", input.Variant)
	}

	highSugarOil := input.HighSugarOil
	if highSugarOil == "" {
		highSugarOil = "yes"
	}
	cfg.HighSugarOil, err = ParseBoolString(highSugarOil)
	if err != nil {
		return fmt.Errorf("invalid --high-sugar-oil value: %w", err)
	}
	return nil
}
