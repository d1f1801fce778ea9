// main is the entry point for the foodsec CLI.
package main

import (
	"os"

	"github.com/huangsam/foodsec/cmd"
	"github.com/huangsam/foodsec/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogError("Command failed", err)
		os.Exit(1)
	}
}
