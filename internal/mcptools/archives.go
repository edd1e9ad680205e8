package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListArchivesHandler returns the handler function for the list_archives MCP tool.
func ListArchivesHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input ListArchivesInput) (*mcp.CallToolResult, ListArchivesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListArchivesInput) (*mcp.CallToolResult, ListArchivesOutput, error) {
		switch input.Source {
		case "", rewind.SourceMock, rewind.SourceGit:
		default:
			return nil, ListArchivesOutput{}, fmt.Errorf("source must be mock or git, got %q", input.Source)
		}
		if input.Offset < 0 {
			return nil, ListArchivesOutput{}, fmt.Errorf("offset must not be negative, got %d", input.Offset)
		}
		limit := input.Limit
		if limit <= 0 {
			limit = 20
		}

		archives, err := store.List(storage.ListOptions{
			Year:   input.Year,
			Source: input.Source,
			Limit:  limit,
			Offset: input.Offset,
		})
		if err != nil {
			return nil, ListArchivesOutput{}, err
		}

		results := make([]ArchiveResult, 0, len(archives))
		for _, a := range archives {
			results = append(results, ArchiveResult{
				ID:           a.ID,
				Label:        a.Label,
				Year:         a.Dataset.Year,
				Source:       a.Dataset.Source,
				TotalCommits: a.Dataset.Stats.TotalCommits,
				CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		return nil, ListArchivesOutput{Archives: results}, nil
	}
}
