package cmd

import (
	"github.com/huangsam/foodsec/core"
	"github.com/huangsam/foodsec/internal/contract"
	"github.com/spf13/cobra"
)

// calculateCmd scores and classifies every respondent.
var calculateCmd = &cobra.Command{
	Use:   "calculate <dataset>...",
	Short: "Score and classify every household in survey datasets.",
	Long: `Calculate the selected indicators for each respondent and label the scores.

FCS uses the high sugar/oil cutoffs unless --high-sugar-oil=no or --variant is set.
Datasets that fail validation are reported and the command exits non-zero
after every result is written.

Examples:
  # Both indicators, table output
  foodsec calculate survey.csv

  # FCS with the standard cutoffs
  foodsec calculate survey.csv --indicator fcs --variant standard

  # Per-respondent export
  foodsec calculate survey.csv --output parquet --output-file scores.parquet`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCalculate(rootCtx, cfg, datasetLoader, resultWriter); err != nil {
			contract.LogFatal("Cannot calculate indicators", err)
		}
	},
}
