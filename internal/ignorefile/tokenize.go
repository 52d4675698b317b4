package ignorefile

import (
	"regexp"
	"strings"
	"unicode"
)

// Line patterns, all anchored at the current scan offset. "Horizontal
// whitespace" is any whitespace except the newline.
var (
	whitespacePattern = regexp.MustCompile(`^[^\S\n]+`)
	headerPattern     = regexp.MustCompile(`^[^\S\n]*#@(?:[^\S\n]+([^\n]*))?(?:\n|$)`)
	commentPattern    = regexp.MustCompile(`^#[^\S\n]*([^\n]*)\n?`)
	blankPattern      = regexp.MustCompile(`^(?:\n[^\S\n]*)+`)
	rulePattern       = regexp.MustCompile(`^([^#\n][^\n]*)\n?`)
)

// matcher consumes a prefix of chunk, emitting tokens into s. It returns the
// number of bytes consumed, zero when it does not apply.
type matcher struct {
	name  string
	match func(s *scanner, chunk string) int
}

// matchers are tried in order at every offset; the first one that consumes
// input wins.
var matchers = []matcher{
	{"whitespace", (*scanner).whitespace},
	{"section", (*scanner).section},
	{"comment", (*scanner).comment},
	{"blank", (*scanner).blank},
	{"rule", (*scanner).rule},
}

// scanner holds all mutable state for a single Tokenize call.
type scanner struct {
	tokens    []Token
	inSection bool
	inBlock   bool
}

// Tokenize converts raw ignore-file text into a token stream. It never
// fails: every line is either a section header, a comment, blank or a rule.
func Tokenize(input string) []Token {
	s := &scanner{}
	for offset := 0; offset < len(input); {
		n := s.step(input[offset:])
		if n == 0 {
			break
		}
		offset += n
	}
	return s.tokens
}

// step applies the first matcher that consumes part of chunk.
func (s *scanner) step(chunk string) int {
	for _, m := range matchers {
		if n := m.match(s, chunk); n > 0 {
			return n
		}
	}
	return 0
}

func (s *scanner) emit(kind Kind, value string) {
	s.tokens = append(s.tokens, Token{Kind: kind, Value: value})
}

// lastKind returns the kind of the most recent token, or -1 if none.
func (s *scanner) lastKind() Kind {
	if len(s.tokens) == 0 {
		return -1
	}
	return s.tokens[len(s.tokens)-1].Kind
}

// openSection emits an implicit untitled section if none is open yet.
func (s *scanner) openSection() {
	if !s.inSection {
		s.emit(KindSection, "")
		s.inSection = true
	}
}

func (s *scanner) whitespace(chunk string) int {
	loc := whitespacePattern.FindStringIndex(chunk)
	if loc == nil {
		return 0
	}
	return loc[1]
}

func (s *scanner) section(chunk string) int {
	m := headerPattern.FindStringSubmatchIndex(chunk)
	if m == nil {
		return 0
	}
	var title string
	if m[2] >= 0 {
		title = trimTitle(chunk[m[2]:m[3]])
	}
	s.inSection = true
	s.inBlock = false
	s.emit(KindSection, title)
	return m[1]
}

func (s *scanner) comment(chunk string) int {
	m := commentPattern.FindStringSubmatchIndex(chunk)
	if m == nil {
		return 0
	}
	text := chunk[m[2]:m[3]]
	s.openSection()
	if last := s.lastKind(); last != KindBlock && last != KindComment {
		s.emit(KindBlock, trimTitle(text))
		s.inBlock = true
	} else {
		s.emit(KindComment, text)
	}
	return m[1]
}

func (s *scanner) blank(chunk string) int {
	loc := blankPattern.FindStringIndex(chunk)
	if loc == nil {
		return 0
	}
	s.emit(KindLine, "")
	return loc[1]
}

func (s *scanner) rule(chunk string) int {
	m := rulePattern.FindStringSubmatchIndex(chunk)
	if m == nil {
		return 0
	}
	s.openSection()
	if !s.inBlock {
		s.emit(KindBlock, "")
		s.inBlock = true
	}
	s.emit(KindRule, chunk[m[2]:m[3]])
	return m[1]
}

// trimTitle drops trailing whitespace from a section or block title, so
// "#@ Title " written by Compile reads back as "Title".
func trimTitle(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
