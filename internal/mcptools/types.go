package mcptools

import "github.com/dusk-indust/ignoremerge/internal/ignorefile"

// --- MCP Tool Types for the server mode (--serve-mcp) ---

// MergeInput is the input for the merge_ignore_files MCP tool.
type MergeInput struct {
	Sources       []string `json:"sources" jsonschema:"ignore file contents to merge, in order"`
	Sort          *bool    `json:"sort,omitempty" jsonschema:"sort sections and blocks by title (default true)"`
	MergeSections *bool    `json:"mergeSections,omitempty" jsonschema:"merge sections with equal titles (default true)"`
	MergeBlocks   *bool    `json:"mergeBlocks,omitempty" jsonschema:"deduplicate lines of blocks with equal titles (default true)"`
}

// MergeOutput is the result of the merge_ignore_files MCP tool.
type MergeOutput struct {
	Output string           `json:"output"`
	Stats  ignorefile.Stats `json:"stats"`
}

// ParseInput is the input for the parse_ignore_file MCP tool.
type ParseInput struct {
	Source string `json:"source" jsonschema:"ignore file content to parse"`
}

// ParseOutput is the result of the parse_ignore_file MCP tool.
type ParseOutput struct {
	Stats    ignorefile.Stats `json:"stats"`
	Sections []ParsedSection  `json:"sections"`
}

// ParsedSection is one section of a parsed ignore file.
type ParsedSection struct {
	Title  string        `json:"title"`
	Blocks []ParsedBlock `json:"blocks"`
}

// ParsedBlock is one block of a parsed ignore file.
type ParsedBlock struct {
	Title string       `json:"title"`
	Lines []ParsedLine `json:"lines"`
}

// ParsedLine is a rule or comment line. Kind is "RULE" or "COMMENT".
type ParsedLine struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}
