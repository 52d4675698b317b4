package ignorefile

// Document is a parsed ignore file: an ordered list of sections.
type Document struct {
	Sections []*Section `json:"sections"`
}

// Section is a group of blocks introduced by a "#@ Title" header.
// Title is empty for the implicit leading section.
type Section struct {
	Title  string   `json:"title"`
	Blocks []*Block `json:"blocks"`
}

// Block is a group of lines introduced by a leading comment, which becomes
// its title. Title is empty for an anonymous block of bare rules.
type Block struct {
	Title string  `json:"title"`
	Lines []Token `json:"lines"`
}

// Stats summarises the size of a Document.
type Stats struct {
	Sections int `json:"sections"`
	Blocks   int `json:"blocks"`
	Rules    int `json:"rules"`
	Comments int `json:"comments"`
}

// Clone returns a deep copy of d that shares no sections, blocks or lines.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Sections: make([]*Section, len(d.Sections))}
	for i, sec := range d.Sections {
		out.Sections[i] = sec.Clone()
	}
	return out
}

// Stats counts the sections, blocks, rules and comments in d.
func (d *Document) Stats() Stats {
	var st Stats
	if d == nil {
		return st
	}
	st.Sections = len(d.Sections)
	for _, sec := range d.Sections {
		st.Blocks += len(sec.Blocks)
		for _, b := range sec.Blocks {
			for _, line := range b.Lines {
				switch line.Kind {
				case KindRule:
					st.Rules++
				case KindComment:
					st.Comments++
				}
			}
		}
	}
	return st
}

// Clone returns a deep copy of s.
func (s *Section) Clone() *Section {
	out := &Section{Title: s.Title, Blocks: make([]*Block, len(s.Blocks))}
	for i, b := range s.Blocks {
		out.Blocks[i] = b.Clone()
	}
	return out
}

// Clone returns a deep copy of b.
func (b *Block) Clone() *Block {
	lines := make([]Token, len(b.Lines))
	copy(lines, b.Lines)
	return &Block{Title: b.Title, Lines: lines}
}

// findSection returns the first section titled title, or nil.
func (d *Document) findSection(title string) *Section {
	for _, sec := range d.Sections {
		if sec.Title == title {
			return sec
		}
	}
	return nil
}

// findBlock returns the first block titled title, or nil.
func (s *Section) findBlock(title string) *Block {
	for _, b := range s.Blocks {
		if b.Title == title {
			return b
		}
	}
	return nil
}

// has reports whether b already holds a line equal to line.
func (b *Block) has(line Token) bool {
	for _, l := range b.Lines {
		if l == line {
			return true
		}
	}
	return false
}
