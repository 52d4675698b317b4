package ignorefile

// Parse builds a Document from a token stream in a single forward pass.
//
// Streams from Tokenize always open a section before a block and a block
// before any rule or comment. Hand-built streams that skip those get an
// implicit untitled section or block instead of being rejected.
func Parse(tokens []Token) *Document {
	p := &parser{doc: &Document{}}
	for _, tok := range tokens {
		p.add(tok)
	}
	return p.doc
}

// ParseString tokenizes and parses input.
func ParseString(input string) *Document {
	return Parse(Tokenize(input))
}

// parser tracks the section and block that new tokens attach to.
type parser struct {
	doc     *Document
	section *Section
	block   *Block
}

func (p *parser) add(tok Token) {
	switch tok.Kind {
	case KindSection:
		p.addSection(tok.Value)
	case KindBlock:
		p.addBlock(tok.Value)
	case KindRule, KindComment:
		if p.block == nil {
			p.addBlock("")
		}
		p.block.Lines = append(p.block.Lines, tok)
	default:
		// LINE markers carry no structure.
	}
}

func (p *parser) addSection(title string) {
	p.section = &Section{Title: title}
	p.block = nil
	p.doc.Sections = append(p.doc.Sections, p.section)
}

func (p *parser) addBlock(title string) {
	if p.section == nil {
		p.addSection("")
	}
	p.block = &Block{Title: title}
	p.section.Blocks = append(p.section.Blocks, p.block)
}
