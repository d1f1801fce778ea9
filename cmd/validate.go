package cmd

import (
	"github.com/huangsam/foodsec/core"
	"github.com/huangsam/foodsec/internal/contract"
	"github.com/spf13/cobra"
)

// validateCmd checks datasets against the indicator schemas.
var validateCmd = &cobra.Command{
	Use:   "validate <dataset>...",
	Short: "Check that survey datasets can be scored.",
	Long: `Validate each dataset against every selected indicator.

Checks run in order and stop at the first failure:
- Every required column exists
- No required column has missing values
- Every required column is numeric
- Every value lies between 0 and 7 days

Exits non-zero when any dataset fails.

Examples:
  # Validate a survey for both indicators
  foodsec validate survey.csv

  # Validate only the FCS columns of several rounds
  foodsec validate round1.parquet round2.parquet --indicator fcs

  # Export the report
  foodsec validate survey.csv --output csv --output-file report.csv`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteValidate(rootCtx, cfg, datasetLoader, resultWriter); err != nil {
			contract.LogFatal("Cannot validate datasets", err)
		}
	},
}
