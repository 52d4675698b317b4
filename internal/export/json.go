package export

import (
	"encoding/json"
	"fmt"

	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
)

// DocumentExport is the top-level JSON export structure.
type DocumentExport struct {
	Stats    ignorefile.Stats `json:"stats"`
	Sections []SectionExport  `json:"sections"`
}

// SectionExport describes one section.
type SectionExport struct {
	Title  string        `json:"title"`
	Blocks []BlockExport `json:"blocks"`
}

// BlockExport describes one block and its lines in order.
type BlockExport struct {
	Title string             `json:"title"`
	Lines []ignorefile.Token `json:"lines"`
}

// ExportDocument builds a DocumentExport from a parsed or merged tree.
// Empty section and block lists are exported as [] rather than null.
func ExportDocument(doc *ignorefile.Document) *DocumentExport {
	out := &DocumentExport{
		Stats:    doc.Stats(),
		Sections: []SectionExport{},
	}
	if doc == nil {
		return out
	}
	for _, sec := range doc.Sections {
		se := SectionExport{Title: sec.Title, Blocks: []BlockExport{}}
		for _, b := range sec.Blocks {
			lines := make([]ignorefile.Token, len(b.Lines))
			copy(lines, b.Lines)
			se.Blocks = append(se.Blocks, BlockExport{Title: b.Title, Lines: lines})
		}
		out.Sections = append(out.Sections, se)
	}
	return out
}

// JSON renders doc as indented JSON with a trailing newline.
func JSON(doc *ignorefile.Document) ([]byte, error) {
	out, err := json.MarshalIndent(ExportDocument(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(out, '\n'), nil
}
