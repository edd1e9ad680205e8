package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultCommitLimit = 50

// ListCommitsHandler returns the handler function for the list_commits MCP tool.
func ListCommitsHandler(ds rewind.Dataset) func(ctx context.Context, req *mcp.CallToolRequest, input ListCommitsInput) (*mcp.CallToolResult, ListCommitsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListCommitsInput) (*mcp.CallToolResult, ListCommitsOutput, error) {
		view := ds
		if input.Type != "" {
			t, err := rewind.ParseCommitType(input.Type)
			if err != nil {
				return nil, ListCommitsOutput{}, err
			}
			view.Commits = view.CommitsOfType(t)
		}
		if input.Month != 0 {
			if input.Month < 1 || input.Month > 12 {
				return nil, ListCommitsOutput{}, fmt.Errorf("month must be between 1 and 12, got %d", input.Month)
			}
			view.Commits = view.CommitsInMonth(time.Month(input.Month))
		}
		commits := view.Commits

		limit := input.Limit
		if limit <= 0 {
			limit = defaultCommitLimit
		}

		out := ListCommitsOutput{Total: len(commits), Commits: make([]CommitResult, 0, min(limit, len(commits)))}
		for _, c := range commits {
			if len(out.Commits) >= limit {
				break
			}
			out.Commits = append(out.Commits, CommitResult{
				ID:           c.ID,
				Date:         c.Date.Format(time.RFC3339),
				Message:      c.Message,
				Type:         string(c.Type),
				LinesAdded:   c.LinesAdded,
				LinesRemoved: c.LinesRemoved,
				Hour:         c.Hour,
			})
		}
		return nil, out, nil
	}
}
