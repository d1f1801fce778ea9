// Package cmd defines the command-line interface for foodsec.
package cmd

import (
	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(indicatorsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("indicator", "i", "all", "Comma-separated indicators: fcs, rcsi or all")
	rootCmd.PersistentFlags().String("variant", "", "Threshold variant: standard or high_sugar_oil (empty = indicator default)")
	rootCmd.PersistentFlags().String("high-sugar-oil", "yes", "Use the FCS high sugar/oil cutoffs when no variant is given (yes/no)")
	rootCmd.PersistentFlags().String("input-format", "", "Dataset format: csv or parquet or arrow (empty = from file extension)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Respondents shown per result in text output (0 = all)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for scores")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of classifyCmd to Viper
	classifyCmd.Flags().String("score-column", "", "Column holding precomputed scores")
	if err := viper.BindPFlags(classifyCmd.Flags()); err != nil {
		contract.LogFatal("Error binding classify flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address for the HTTP API to listen on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}
}
