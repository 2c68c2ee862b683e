package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpagano/graphpoint/internal/contract"
	mcp_internal "github.com/gpagano/graphpoint/internal/mcp"
)

func baseConfig() *contract.Config {
	return &contract.Config{Precision: contract.DefaultPrecision}
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestMCPServerComputeFromPoints(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig())

	t.Run("valid dataset", func(t *testing.T) {
		res := callTool(t, s, "compute_from_points", map[string]any{
			"points": "0,0 2,0 2,2 0,2",
		})
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(text), &payload))
		assert.Contains(t, payload, "label")
		assert.Contains(t, payload, "bundle")
	})

	t.Run("empty dataset", func(t *testing.T) {
		res := callTool(t, s, "compute_from_points", map[string]any{"points": ""})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "at least one (x, y) pair")
	})

	t.Run("malformed pair", func(t *testing.T) {
		res := callTool(t, s, "compute_from_points", map[string]any{"points": "1,2 3"})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid points")
	})
}

func TestMCPServerComputeFromEquation(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig())

	t.Run("valid expression", func(t *testing.T) {
		res := callTool(t, s, "compute_from_equation", map[string]any{
			"expr":    "x",
			"x_min":   -1.0,
			"x_max":   1.0,
			"samples": 3.0,
		})
		require.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "slope_at_centroid")
	})

	t.Run("domain error", func(t *testing.T) {
		res := callTool(t, s, "compute_from_equation", map[string]any{
			"expr":    "sqrt(x)",
			"x_min":   -1.0,
			"x_max":   1.0,
			"samples": 5.0,
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "not a real number")
	})

	t.Run("unknown symbol", func(t *testing.T) {
		res := callTool(t, s, "compute_from_equation", map[string]any{
			"expr": "x + nope",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "unknown symbol")
	})
}
