package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/foodsec/core"
	"github.com/huangsam/foodsec/internal/contract"
	"github.com/huangsam/foodsec/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	loader  contract.DatasetLoader
}

func (h *toolHandler) handleListIndicators(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys, err := core.ParseIndicatorKeys(request.GetString("indicator", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid indicator: %v", err)), nil
	}

	defs := make([]schema.IndicatorDefinition, 0, len(keys))
	for _, key := range keys {
		ind, err := core.Lookup(key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		defs = append(defs, core.Describe(ind))
	}

	jsonData, _ := json.MarshalIndent(defs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleValidateDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	keys, err := core.ParseIndicatorKeys(request.GetString("indicator", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid indicator: %v", err)), nil
	}
	cfg.Indicators = keys

	table, err := h.loader.Load(ctx, path, schema.InputFormat(request.GetString("input_format", string(cfg.InputFormat))))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	jobs := make([]core.Job, 0, len(keys))
	for _, key := range keys {
		ind, err := core.Lookup(key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		jobs = append(jobs, core.Job{Source: path, Table: table, Indicator: ind, Variant: core.VariantFor(ind, cfg)})
	}
	reports := core.ValidateBatch(ctx, jobs, cfg.Workers)

	jsonData, _ := json.MarshalIndent(reports, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCalculateIndicator(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	ind, err := core.Lookup(schema.IndicatorKey(request.GetString("indicator", "")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg.Indicators = []schema.IndicatorKey{ind.Key()}
	cfg.Variant = schema.Variant(request.GetString("variant", string(cfg.Variant)))
	cfg.HighSugarOil = request.GetBool("high_sugar_oil", cfg.HighSugarOil)

	table, err := h.loader.Load(ctx, path, schema.InputFormat(request.GetString("input_format", string(cfg.InputFormat))))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	jr := core.Evaluate(core.Job{Source: path, Table: table, Indicator: ind, Variant: core.VariantFor(ind, cfg)})
	if jr.Err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error calculating %s: %v", ind.Name(), jr.Err)), nil
	}

	result := core.BuildResult(jr)
	if l := request.GetInt("limit", 0); l > 0 && l < len(result.Respondents) {
		result.Respondents = result.Respondents[:l]
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
