package mcptools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
)

// MergeService handles MCP tool calls. Options left unset in a request fall
// back to the service defaults.
type MergeService struct {
	defaults ignorefile.Options
}

// NewMergeService creates a MergeService with the given default options.
func NewMergeService(defaults ignorefile.Options) *MergeService {
	return &MergeService{defaults: defaults}
}

// MergeIgnoreFiles merges the given sources and returns the compiled text.
func (s *MergeService) MergeIgnoreFiles(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MergeInput,
) (*mcp.CallToolResult, MergeOutput, error) {
	if len(input.Sources) == 0 {
		return nil, MergeOutput{}, errors.New("sources must contain at least one ignore file")
	}

	opts := s.defaults
	if input.Sort != nil {
		opts.Sort = *input.Sort
	}
	if input.MergeSections != nil {
		opts.MergeSections = *input.MergeSections
	}
	if input.MergeBlocks != nil {
		opts.MergeBlocks = *input.MergeBlocks
	}

	doc := ignorefile.MergeDocuments(opts, input.Sources...)
	return nil, MergeOutput{
		Output: ignorefile.Compile(doc, opts.CompileOptions()),
		Stats:  doc.Stats(),
	}, nil
}

// ParseIgnoreFile parses a single source into its section/block tree.
func (s *MergeService) ParseIgnoreFile(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	doc := ignorefile.ParseString(input.Source)

	out := ParseOutput{Stats: doc.Stats(), Sections: []ParsedSection{}}
	for _, sec := range doc.Sections {
		ps := ParsedSection{Title: sec.Title, Blocks: []ParsedBlock{}}
		for _, b := range sec.Blocks {
			pb := ParsedBlock{Title: b.Title, Lines: make([]ParsedLine, len(b.Lines))}
			for i, line := range b.Lines {
				pb.Lines[i] = ParsedLine{Kind: line.Kind.String(), Value: line.Value}
			}
			ps.Blocks = append(ps.Blocks, pb)
		}
		out.Sections = append(out.Sections, ps)
	}
	return nil, out, nil
}
