package ignorefile

import "fmt"

// Kind identifies the type of a Token.
type Kind int

const (
	// KindSection opens a section. Value is the section title, empty for the
	// implicit leading section.
	KindSection Kind = iota

	// KindBlock opens a block. Value is the block title, empty for an
	// anonymous block.
	KindBlock

	// KindRule is an ignore pattern, stored verbatim.
	KindRule

	// KindComment is a comment line inside an already open block.
	KindComment

	// KindLine marks a run of blank lines. It carries no value and is
	// dropped by the parser.
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "SECTION"
	case KindBlock:
		return "BLOCK"
	case KindRule:
		return "RULE"
	case KindComment:
		return "COMMENT"
	case KindLine:
		return "LINE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes k by name so exported trees stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, c := range []Kind{KindSection, KindBlock, KindRule, KindComment, KindLine} {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

// Token is a single lexical unit produced by Tokenize.
type Token struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value,omitempty"`
}

// IsLine reports whether t is retained inside a block (a rule or a comment).
func (t Token) IsLine() bool {
	return t.Kind == KindRule || t.Kind == KindComment
}

func (t Token) String() string {
	if t.Kind == KindLine {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Value)
}
