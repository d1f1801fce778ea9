package cmd

import (
	"github.com/huangsam/foodsec/core"
	"github.com/huangsam/foodsec/internal/contract"
	"github.com/spf13/cobra"
)

// indicatorsCmd displays the definitions of all indicators.
var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "Display columns, weights and cutoffs for every indicator",
	Long: `Show the required columns, weights, formula and threshold variants of each indicator.

No dataset is read - this is purely informational.

Examples:
  foodsec indicators
  foodsec indicators --indicator rcsi --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteIndicators(rootCtx, cfg, datasetLoader, resultWriter); err != nil {
			contract.LogFatal("Cannot display indicators", err)
		}
	},
}
