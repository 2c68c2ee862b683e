package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gpagano/graphpoint/core"
	"github.com/gpagano/graphpoint/internal/contract"
	"github.com/gpagano/graphpoint/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleComputeFromPoints(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetInt("precision", 0); p > 0 && p <= contract.MaxPrecision {
		cfg.Precision = p
	}

	ds, err := contract.ParsePoints(request.GetString("points", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid points: %v", err)), nil
	}

	result, err := core.ComputeFromPoints(ds)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(enriched(result.Annotations, result, cfg.Precision), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleComputeFromEquation(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetInt("precision", 0); p > 0 && p <= contract.MaxPrecision {
		cfg.Precision = p
	}

	spec := schema.EquationSpec{
		Expr:    request.GetString("expr", ""),
		XMin:    request.GetFloat("x_min", contract.DefaultXMin),
		XMax:    request.GetFloat("x_max", contract.DefaultXMax),
		Samples: request.GetInt("samples", contract.DefaultSamples),
	}

	result, err := core.ComputeFromEquation(spec)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(enriched(result.Annotations, result, cfg.Precision), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// enrichedBundle wraps a render bundle with the slope label and the
// sample coordinate labels, so agents get the same readout the table
// output shows.
type enrichedBundle struct {
	Label        string   `json:"label"`
	SampleLabels []string `json:"sample_labels"`
	Bundle       any      `json:"bundle"`
}

func enriched(ann schema.AnnotationSet, bundle any, precision int) enrichedBundle {
	labels := make([]string, len(ann.Samples))
	for i, s := range ann.Samples {
		labels[i] = schema.FormatPoint(s, precision)
	}
	return enrichedBundle{
		Label:        contract.GetPlainLabel(ann.SlopeAtCentroid, ann.SlopeOK),
		SampleLabels: labels,
		Bundle:       bundle,
	}
}
