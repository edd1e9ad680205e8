package mcptools

import (
	"context"

	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewRewindMCPServer creates an in-memory MCP server exposing rewind tools.
// Returns the server and a client transport for connecting to it.
func NewRewindMCPServer(ds rewind.Dataset, store storage.Storage) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(ds, store)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the rewind tools registered.
// list_archives is only offered when store is non-nil.
func CreateMCPServer(ds rewind.Dataset, store storage.Storage) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "devrewind",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_stats",
		Description: "Year-in-review statistics for the current session: commits, late-night and weekend counts, favorite commit type, coffee, lines of code, hotfixes",
	}, GetStatsHandler(ds))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_commits",
		Description: "List the session's commits, oldest first, optionally filtered by type and month",
	}, ListCommitsHandler(ds))

	if store != nil {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "list_archives",
			Description: "List saved rewinds, newest first, optionally filtered by year or commit source",
		}, ListArchivesHandler(store))
	}

	return server
}
