package mcptools

import (
	"context"

	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetStatsHandler returns the handler function for the get_stats MCP tool.
func GetStatsHandler(ds rewind.Dataset) func(ctx context.Context, req *mcp.CallToolRequest, input GetStatsInput) (*mcp.CallToolResult, GetStatsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetStatsInput) (*mcp.CallToolResult, GetStatsOutput, error) {
		counts := ds.MonthlyCounts()
		return nil, GetStatsOutput{
			Year:          ds.Year,
			Source:        ds.Source,
			Seed:          ds.Seed,
			Stats:         ds.Stats,
			MonthlyCounts: counts[:],
		}, nil
	}
}
