package ignorefile

// MergeOptions controls how sections and blocks from different sources are
// matched.
type MergeOptions struct {
	// MergeSections matches source sections to target sections by title.
	// When false every source section is appended as a new section.
	MergeSections bool

	// MergeBlocks deduplicates the lines of title-matched blocks. When false
	// a matched block's lines are replaced by the source block's lines.
	MergeBlocks bool
}

// DefaultMergeOptions matches both sections and blocks.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{MergeSections: true, MergeBlocks: true}
}

// Merger combines parsed documents into a single accumulating tree.
type Merger struct {
	opts MergeOptions
}

// NewMerger creates a Merger with the given options.
func NewMerger(opts MergeOptions) *Merger {
	return &Merger{opts: opts}
}

// Merge folds each source into target, in argument order, and returns
// target. A nil target starts from an empty document.
//
// Sections and blocks are matched by exact, case-sensitive title; the first
// match in target wins. Repeated lines already in target's blocks are
// dropped first, keeping the first occurrence. Anything appended from a source is copied with its
// duplicate lines dropped, so the result never shares structure with the
// sources.
func (m *Merger) Merge(target *Document, sources ...*Document) *Document {
	if target == nil {
		target = &Document{}
	}
	dedupe(target)
	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, sec := range src.Sections {
			m.mergeSection(target, sec)
		}
	}
	return target
}

// MergeText parses each source string and merges it into target.
func (m *Merger) MergeText(target *Document, sources ...string) *Document {
	docs := make([]*Document, len(sources))
	for i, src := range sources {
		docs[i] = ParseString(src)
	}
	return m.Merge(target, docs...)
}

func (m *Merger) mergeSection(target *Document, src *Section) {
	var dst *Section
	if m.opts.MergeSections {
		dst = target.findSection(src.Title)
	}
	if dst == nil {
		target.Sections = append(target.Sections, adoptSection(src))
		return
	}

	for _, b := range src.Blocks {
		existing := dst.findBlock(b.Title)
		switch {
		case existing == nil:
			dst.Blocks = append(dst.Blocks, adoptBlock(b))
		case m.opts.MergeBlocks:
			mergeLines(existing, b)
		default:
			existing.Lines = uniqueLines(b.Lines)
		}
	}
}

// dedupe removes repeated lines from every block of doc.
func dedupe(doc *Document) {
	for _, sec := range doc.Sections {
		for _, b := range sec.Blocks {
			b.Lines = uniqueLines(b.Lines)
		}
	}
}

// mergeLines appends every line of src not already present in dst. The
// first occurrence of a (kind, value) pair keeps its position.
func mergeLines(dst, src *Block) {
	for _, line := range src.Lines {
		if !dst.has(line) {
			dst.Lines = append(dst.Lines, line)
		}
	}
}

// adoptSection copies a source section for appending to a target.
func adoptSection(src *Section) *Section {
	out := &Section{Title: src.Title, Blocks: make([]*Block, len(src.Blocks))}
	for i, b := range src.Blocks {
		out.Blocks[i] = adoptBlock(b)
	}
	return out
}

// adoptBlock copies a source block for appending to a target section.
func adoptBlock(src *Block) *Block {
	return &Block{Title: src.Title, Lines: uniqueLines(src.Lines)}
}

// uniqueLines returns a copy of lines without repeated (kind, value) pairs.
func uniqueLines(lines []Token) []Token {
	out := make([]Token, 0, len(lines))
	seen := make(map[Token]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
