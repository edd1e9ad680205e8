package mcptools

import "github.com/chris-regnier/devrewind/internal/rewind"

// GetStatsInput is the input schema for the get_stats MCP tool.
type GetStatsInput struct{}

// GetStatsOutput is the output schema for the get_stats MCP tool.
type GetStatsOutput struct {
	Year          int          `json:"year"`
	Source        string       `json:"source"`
	Seed          int64        `json:"seed,omitempty"`
	Stats         rewind.Stats `json:"stats"`
	MonthlyCounts []int        `json:"monthly_counts" jsonschema:"commit count per month, January first"`
}

// ListCommitsInput is the input schema for the list_commits MCP tool.
type ListCommitsInput struct {
	Type  string `json:"type,omitempty" jsonschema:"only commits of this type: feature, fix, chore, hotfix or refactor"`
	Month int    `json:"month,omitempty" jsonschema:"only commits in this month (1-12)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of commits to return (default 50)"`
}

// ListCommitsOutput is the output schema for the list_commits MCP tool.
type ListCommitsOutput struct {
	Total   int            `json:"total" jsonschema:"number of matching commits before the limit"`
	Commits []CommitResult `json:"commits"`
}

// CommitResult is one commit in list_commits output.
type CommitResult struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Message      string `json:"message"`
	Type         string `json:"type"`
	LinesAdded   int    `json:"lines_added"`
	LinesRemoved int    `json:"lines_removed"`
	Hour         int    `json:"hour"`
}

// ListArchivesInput is the input schema for the list_archives MCP tool.
type ListArchivesInput struct {
	Year   int    `json:"year,omitempty" jsonschema:"only rewinds of this year"`
	Source string `json:"source,omitempty" jsonschema:"only rewinds built from this commit source (mock or git)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of rewinds to return (default 20)"`
	Offset int    `json:"offset,omitempty" jsonschema:"number of rewinds to skip"`
}

// ListArchivesOutput is the output schema for the list_archives MCP tool.
type ListArchivesOutput struct {
	Archives []ArchiveResult `json:"archives"`
}

// ArchiveResult represents a saved rewind in list_archives output.
type ArchiveResult struct {
	ID           string `json:"id"`
	Label        string `json:"label,omitempty"`
	Year         int    `json:"year"`
	Source       string `json:"source"`
	TotalCommits int    `json:"total_commits"`
	CreatedAt    string `json:"created_at"`
}
