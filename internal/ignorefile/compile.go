package ignorefile

import (
	"slices"
	"strings"
)

// CompileOptions controls rendering of a Document.
type CompileOptions struct {
	// Sort orders sections, and blocks within each section, by
	// case-insensitive title. The sort is stable.
	Sort bool
}

// DefaultCompileOptions sorts sections and blocks.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{Sort: true}
}

// Compile renders doc back to ignore-file text. doc is not modified.
//
// Each section starts with a "#@ Title " header (bare "#@" when untitled),
// each titled block with a "# Title" heading. An untitled block gets a bare
// "#" heading unless it is the first block of its section and starts with a
// rule. Sections and blocks are
// separated by a blank line. The output has no trailing newline.
func Compile(doc *Document, opts CompileOptions) string {
	if doc == nil {
		return ""
	}
	if opts.Sort {
		doc = sorted(doc)
	}

	sections := make([]string, len(doc.Sections))
	for i, sec := range doc.Sections {
		sections[i] = compileSection(sec)
	}
	return strings.Join(sections, "\n\n")
}

func compileSection(sec *Section) string {
	var sb strings.Builder
	sb.WriteString("#@")
	if sec.Title != "" {
		sb.WriteString(" " + sec.Title + " ")
	}
	if len(sec.Blocks) == 0 {
		return sb.String()
	}
	sb.WriteString("\n")

	blocks := make([]string, len(sec.Blocks))
	for i, b := range sec.Blocks {
		blocks[i] = compileBlock(b, i == 0)
	}
	sb.WriteString(strings.Join(blocks, "\n\n"))
	return sb.String()
}

func compileBlock(b *Block, first bool) string {
	lines := make([]string, 0, len(b.Lines)+1)
	switch {
	case b.Title != "":
		lines = append(lines, "# "+b.Title)
	case needsBareHeading(b, first):
		lines = append(lines, "#")
	}
	for _, line := range b.Lines {
		switch line.Kind {
		case KindRule:
			lines = append(lines, line.Value)
		case KindComment:
			if line.Value != "" {
				lines = append(lines, "# "+line.Value)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// sorted returns a copy of doc with sections and blocks ordered by title.
func sorted(doc *Document) *Document {
	out := doc.Clone()
	slices.SortStableFunc(out.Sections, func(a, b *Section) int {
		return compareTitles(a.Title, b.Title)
	})
	for _, sec := range out.Sections {
		slices.SortStableFunc(sec.Blocks, func(a, b *Block) int {
			return compareTitles(a.Title, b.Title)
		})
	}
	return out
}

func compareTitles(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// needsBareHeading reports whether an untitled block must open with a bare
// "#" to read back as untitled. Only a leading rule in the first block of a
// section starts an anonymous block on its own; anywhere else the rules
// would join the previous block, and a leading comment would become a title.
func needsBareHeading(b *Block, first bool) bool {
	if !first || len(b.Lines) == 0 {
		return true
	}
	return b.Lines[0].Kind == KindComment
}
