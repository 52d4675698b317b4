package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewMergeMCPServer creates an MCP server with the merge_ignore_files and
// parse_ignore_file tools registered.
func NewMergeMCPServer(svc *MergeService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ignoremerge",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_ignore_files",
		Description: "Merge gitignore-style files. Sections (#@ Title) and blocks (leading comment) with equal titles are combined and duplicate lines dropped. Returns the merged file text.",
	}, svc.MergeIgnoreFiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_ignore_file",
		Description: "Parse a gitignore-style file into its sections, blocks, rules and comments.",
	}, svc.ParseIgnoreFile)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
