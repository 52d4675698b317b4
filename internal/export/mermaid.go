package export

import (
	"fmt"
	"strings"

	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
)

// maxLabel is the number of runes of a title shown in a diagram node.
const maxLabel = 40

// GenerateMermaid produces a Mermaid graph TD diagram of doc. Each section
// becomes a subgraph holding one node per block, labelled with the block
// title and its line counts.
func GenerateMermaid(doc *ignorefile.Document) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if doc == nil {
		return sb.String()
	}

	for i, sec := range doc.Sections {
		fmt.Fprintf(&sb, "  subgraph S%d[\"%s\"]\n", i, label(sec.Title, "(untitled)"))
		for j, b := range sec.Blocks {
			rules, comments := countLines(b)
			fmt.Fprintf(&sb, "    S%dB%d[\"%s<br/>%d rules, %d comments\"]\n",
				i, j, label(b.Title, "(anonymous)"), rules, comments)
		}
		sb.WriteString("  end\n")
	}
	return sb.String()
}

func countLines(b *ignorefile.Block) (rules, comments int) {
	for _, line := range b.Lines {
		switch line.Kind {
		case ignorefile.KindRule:
			rules++
		case ignorefile.KindComment:
			comments++
		}
	}
	return rules, comments
}

// label truncates title for display and escapes characters Mermaid treats
// specially inside a quoted label.
func label(title, fallback string) string {
	if title == "" {
		return fallback
	}
	r := []rune(title)
	if len(r) > maxLabel {
		title = string(r[:maxLabel]) + "…"
	}
	return strings.NewReplacer(`"`, "#quot;", "<", "#lt;", ">", "#gt;").Replace(title)
}
