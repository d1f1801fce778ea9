// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/foodsec/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the foodsec MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.DatasetLoader, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Food Security Indicator Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		loader:  loader,
	}

	// --- 1. Tool: list_indicators ---
	s.AddTool(mcp.NewTool("list_indicators",
		mcp.WithDescription("List the supported food-security indicators with their columns, weights and threshold tables."),
		mcp.WithString("indicator", mcp.Description("Comma-separated indicator keys (fcs, rcsi) or 'all'. Defaults to 'all'.")),
	), h.handleListIndicators)

	// --- 2. Tool: validate_dataset ---
	s.AddTool(mcp.NewTool("validate_dataset",
		mcp.WithDescription("Check that a survey dataset has the columns, numeric types and 0-7 values an indicator needs."),
		mcp.WithString("path", mcp.Description("Path to a CSV, Parquet or Arrow IPC survey file."), mcp.Required()),
		mcp.WithString("indicator", mcp.Description("Comma-separated indicator keys (fcs, rcsi) or 'all'. Defaults to 'all'.")),
		mcp.WithString("input_format", mcp.Description("File format. Inferred from the extension when empty."), mcp.Enum("csv", "parquet", "arrow")),
	), h.handleValidateDataset)

	// --- 3. Tool: calculate_indicator ---
	s.AddTool(mcp.NewTool("calculate_indicator",
		mcp.WithDescription("Calculate and classify one indicator for every respondent of a survey dataset."),
		mcp.WithString("path", mcp.Description("Path to a CSV, Parquet or Arrow IPC survey file."), mcp.Required()),
		mcp.WithString("indicator", mcp.Description("Indicator key."), mcp.Required(), mcp.Enum("fcs", "rcsi")),
		mcp.WithString("variant", mcp.Description("Threshold variant. Defaults to the indicator's default."), mcp.Enum("standard", "high_sugar_oil")),
		mcp.WithBoolean("high_sugar_oil", mcp.Description("For FCS without a variant: use the high sugar/oil cutoffs. Defaults to true.")),
		mcp.WithString("input_format", mcp.Description("File format. Inferred from the extension when empty."), mcp.Enum("csv", "parquet", "arrow")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of respondents returned.")),
	), h.handleCalculateIndicator)

	return s
}

// StartMCPServer starts the foodsec MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.DatasetLoader, version string) error {
	s := NewMCPServer(baseCfg, loader, version)
	return server.ServeStdio(s)
}
