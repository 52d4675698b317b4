package ignorefile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(title string) Token { return Token{Kind: KindSection, Value: title} }
func block(title string) Token   { return Token{Kind: KindBlock, Value: title} }
func rule(text string) Token     { return Token{Kind: KindRule, Value: text} }
func comment(text string) Token  { return Token{Kind: KindComment, Value: text} }

var blankLine = Token{Kind: KindLine}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "plain rules open implicit section and block once",
			input: "foo\nbar\n",
			want:  []Token{section(""), block(""), rule("foo"), rule("bar")},
		},
		{
			name:  "section header then titled block",
			input: "#@ A\n# b\nfoo\n",
			want:  []Token{section("A"), block("b"), rule("foo")},
		},
		{
			name:  "comment run becomes title plus in-block comments",
			input: "# title\n# more\nfoo\n\n# next\nbar",
			want: []Token{
				section(""), block("title"), comment("more"), rule("foo"),
				blankLine, block("next"), rule("bar"),
			},
		},
		{
			name:  "comment after a rule opens a new block",
			input: "foo\n# b\nbar",
			want:  []Token{section(""), block(""), rule("foo"), block("b"), rule("bar")},
		},
		{
			name:  "indentation is ignored and titles are right-trimmed",
			input: "  #@  Title  \n  foo  \n",
			want:  []Token{section("Title"), block(""), rule("foo  ")},
		},
		{
			name:  "header without whitespace is a comment",
			input: "#@foo\nbar",
			want:  []Token{section(""), block("@foo"), rule("bar")},
		},
		{
			name:  "bare header is an untitled section",
			input: "#@\nfoo",
			want:  []Token{section(""), block(""), rule("foo")},
		},
		{
			name:  "blank run with indentation is a single line marker",
			input: "foo\n\n   \n\nbar",
			want:  []Token{section(""), block(""), rule("foo"), blankLine, rule("bar")},
		},
		{
			name:  "empty comment inside a block",
			input: "# a\n#\nfoo",
			want:  []Token{section(""), block("a"), comment(""), rule("foo")},
		},
		{
			name:  "new section resets the open block",
			input: "#@ A\nfoo\n#@ B\nbar",
			want: []Token{
				section("A"), block(""), rule("foo"),
				section("B"), block(""), rule("bar"),
			},
		},
		{
			name:  "leading blank lines",
			input: "\n\nfoo",
			want:  []Token{blankLine, section(""), block(""), rule("foo")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.input))
		})
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestMatchers_Consumed(t *testing.T) {
	tests := []struct {
		matcher string
		chunk   string
		want    int
	}{
		{"whitespace", " \tfoo", 2},
		{"whitespace", "\nfoo", 0},
		{"whitespace", "foo", 0},
		{"section", "#@ A\nfoo", 5},
		{"section", "  #@ A", 6},
		{"section", "#@\n", 3},
		{"section", "#@", 2},
		{"section", "#@A", 0},
		{"section", "# A", 0},
		{"comment", "# A\nx", 4},
		{"comment", "#\n", 2},
		{"comment", "foo", 0},
		{"blank", "\n\n  \nx", 5},
		{"blank", "x", 0},
		{"rule", "foo bar\nx", 8},
		{"rule", "foo", 3},
		{"rule", "#x", 0},
		{"rule", "\n", 0},
	}

	byName := make(map[string]matcher, len(matchers))
	for _, m := range matchers {
		byName[m.name] = m
	}

	for _, tc := range tests {
		m, ok := byName[tc.matcher]
		require.True(t, ok, "unknown matcher %q", tc.matcher)
		got := m.match(&scanner{}, tc.chunk)
		assert.Equal(t, tc.want, got, "%s(%q)", tc.matcher, tc.chunk)
	}
}

func TestMatchers_PriorityOrder(t *testing.T) {
	names := make([]string, len(matchers))
	for i, m := range matchers {
		names[i] = m.name
	}
	assert.Equal(t, []string{"whitespace", "section", "comment", "blank", "rule"}, names)
}

func TestToken_JSON(t *testing.T) {
	data, err := json.Marshal(rule("*.log"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"RULE","value":"*.log"}`, string(data))

	var tok Token
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"COMMENT","value":"x"}`), &tok))
	assert.Equal(t, comment("x"), tok)

	err = json.Unmarshal([]byte(`{"kind":"BOGUS"}`), &tok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOGUS")
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, `SECTION "A"`, section("A").String())
	assert.Equal(t, "LINE", blankLine.String())
	assert.Equal(t, "UNKNOWN", Kind(42).String())
}
