// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gpagano/graphpoint/internal/contract"
)

// NewMCPServer initializes and configures the graphpoint MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Graphpoint Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: compute_from_points ---
	s.AddTool(mcp.NewTool("compute_from_points",
		mcp.WithDescription("Compute the chart annotation bundle for a set of (x, y) points: centroid, best fit line, two random samples and the slope at the centroid."),
		mcp.WithString("points", mcp.Description("Whitespace-separated list of x,y pairs, e.g. '0,0 2,0 2,2 0,2'."), mcp.Required()),
		mcp.WithNumber("precision", mcp.Description("Significant digits used in labels (1-6). Defaults to 3.")),
	), h.handleComputeFromPoints)

	// --- 2. Tool: compute_from_equation ---
	s.AddTool(mcp.NewTool("compute_from_equation",
		mcp.WithDescription("Evaluate an expression in x over a range and compute its annotation bundle: curve, centroid, two random samples and a local derivative at the centroid."),
		mcp.WithString("expr", mcp.Description("Expression in x, e.g. 'sin(x) + 0.5*x**2'."), mcp.Required()),
		mcp.WithNumber("x_min", mcp.Description("Lower bound of the x range.")),
		mcp.WithNumber("x_max", mcp.Description("Upper bound of the x range.")),
		mcp.WithNumber("samples", mcp.Description("Number of uniformly spaced samples (>= 2). Defaults to 400.")),
		mcp.WithNumber("precision", mcp.Description("Significant digits used in labels (1-6). Defaults to 3.")),
	), h.handleComputeFromEquation)

	return s
}

// StartMCPServer starts the graphpoint MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
