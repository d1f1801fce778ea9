package cmd

import (
	"github.com/huangsam/foodsec/core"
	"github.com/huangsam/foodsec/internal/contract"
	"github.com/spf13/cobra"
)

// classifyCmd labels precomputed scores.
var classifyCmd = &cobra.Command{
	Use:   "classify <dataset>... --score-column <column>",
	Short: "Classify an existing score column.",
	Long: `Assign categories to scores that were computed elsewhere.

Exactly one indicator must be selected. Missing and negative scores are
reported as Unclassified.

Examples:
  foodsec classify scored.csv --indicator fcs --score-column fcs_score
  foodsec classify scored.csv --indicator rcsi --score-column rcsi --output json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteClassify(rootCtx, cfg, datasetLoader, resultWriter); err != nil {
			contract.LogFatal("Cannot classify scores", err)
		}
	},
}
