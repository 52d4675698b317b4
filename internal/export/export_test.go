package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
)

const sample = "#@ node\n# Logs\n# keep these\n*.log\nlogs\n\n#@ OSX\n.DS_Store\n"

func TestExportDocument(t *testing.T) {
	exp := ExportDocument(ignorefile.ParseString(sample))

	assert.Equal(t, ignorefile.Stats{Sections: 2, Blocks: 2, Rules: 3, Comments: 1}, exp.Stats)
	require.Len(t, exp.Sections, 2)
	assert.Equal(t, "node", exp.Sections[0].Title)
	require.Len(t, exp.Sections[0].Blocks, 1)
	assert.Equal(t, "Logs", exp.Sections[0].Blocks[0].Title)
	assert.Len(t, exp.Sections[0].Blocks[0].Lines, 3)
	assert.Equal(t, "OSX", exp.Sections[1].Title)
}

func TestExportDocument_NilDocument(t *testing.T) {
	exp := ExportDocument(nil)
	assert.NotNil(t, exp.Sections)
	assert.Empty(t, exp.Sections)
}

func TestJSON(t *testing.T) {
	data, err := JSON(ignorefile.ParseString("#@ A\n# b\nfoo\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	assert.JSONEq(t, `{
		"stats": {"sections": 1, "blocks": 1, "rules": 1, "comments": 0},
		"sections": [
			{"title": "A", "blocks": [
				{"title": "b", "lines": [{"kind": "RULE", "value": "foo"}]}
			]}
		]
	}`, string(data))

	var back DocumentExport
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ignorefile.KindRule, back.Sections[0].Blocks[0].Lines[0].Kind)
}

func TestGenerateMermaid(t *testing.T) {
	got := GenerateMermaid(ignorefile.ParseString(sample))

	want := "graph TD\n" +
		"  subgraph S0[\"node\"]\n" +
		"    S0B0[\"Logs<br/>2 rules, 1 comments\"]\n" +
		"  end\n" +
		"  subgraph S1[\"OSX\"]\n" +
		"    S1B0[\"(anonymous)<br/>1 rules, 0 comments\"]\n" +
		"  end\n"
	assert.Equal(t, want, got)
}

func TestGenerateMermaid_EscapesAndTruncates(t *testing.T) {
	long := strings.Repeat("x", 50)
	got := GenerateMermaid(ignorefile.ParseString("# say \"hi\" <now>\na\n#@ " + long + "\nb\n"))

	assert.Contains(t, got, `subgraph S0["(untitled)"]`)
	assert.Contains(t, got, "say #quot;hi#quot; #lt;now#gt;")
	assert.Contains(t, got, strings.Repeat("x", 40)+"…")
	assert.NotContains(t, got, strings.Repeat("x", 41))
}

func TestGenerateMermaid_NilDocument(t *testing.T) {
	assert.Equal(t, "graph TD\n", GenerateMermaid(nil))
}
