package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the indicators over HTTP",
	Long: `Start an HTTP API for validating, calculating and classifying indicators.

Routes:
  GET  /healthz
  GET  /v1/indicators
  POST /v1/indicators/{key}/validate   CSV body
  POST /v1/indicators/{key}/calculate  CSV body, optional ?variant=
  POST /v1/indicators/{key}/classify   {"scores": [...], "variant": ""}
  GET  /metrics

Examples:
  foodsec serve --addr :9090`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := server.New(cfg, version).ListenAndServe(ctx); err != nil {
			contract.LogFatal("Cannot serve HTTP API", err)
		}
	},
}
