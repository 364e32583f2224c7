package convert

import (
	"strings"
	"testing"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/graph"
)

func TestRewriteGraph(t *testing.T) {
	text := "digraph G {\n// 7:/a/b/main.py\n\t7 -> 9;\n\n}\n"
	labels := ResolveLabels(text)
	got := RewriteGraph(text, labels)

	// Unmapped id 9 keeps the raw id as its label.
	if !strings.Contains(got, "\t\"main.py\" -> \"9\";") {
		t.Errorf("rewritten edge missing or indentation lost:\n%s", got)
	}
	if strings.Contains(got, "//") {
		t.Errorf("comment lines not stripped:\n%s", got)
	}
	if strings.Contains(got, "\n\n") {
		t.Errorf("blank lines not dropped:\n%s", got)
	}
	// Envelope lines pass through.
	if !strings.Contains(got, "digraph G {") {
		t.Errorf("envelope lost:\n%s", got)
	}
}

func TestRewriteGraphPreservesIndent(t *testing.T) {
	labels := IDLabelMap{"1": "a.py", "2": "b.py"}
	got := RewriteGraph("    1 -> 2;\n", labels)
	if got != "    \"a.py\" -> \"b.py\";\n" {
		t.Errorf("got %q", got)
	}
}

func TestRewriteGraphEmpty(t *testing.T) {
	if got := RewriteGraph("", IDLabelMap{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if got := RewriteGraph("// 1:/a.py\n\n", ResolveLabels("// 1:/a.py\n\n")); got != "" {
		t.Errorf("comments-only input should convert to empty, got %q", got)
	}
}

// Re-parsing already-canonical output must be a fixed point of the pipeline.
func TestRewriteThenParse(t *testing.T) {
	text := "// 1:/x/a.py\n// 2:/x/b.py\n1 -> 2;\n"
	canonical := RewriteGraph(text, ResolveLabels(text))
	if !strings.Contains(canonical, `"a.py" -> "b.py";`) {
		t.Fatalf("canonical = %q", canonical)
	}

	m := graph.Parse(canonical)
	if m.NodeCount() != 2 || m.EdgeCount() != 1 {
		t.Fatalf("parsed %d nodes %d edges", m.NodeCount(), m.EdgeCount())
	}
	if m.Nodes[0].ID != "a.py" || m.Nodes[1].ID != "b.py" {
		t.Errorf("nodes = %v", m.Nodes)
	}
	if m.Edges[0] != (graph.Edge{Source: "a.py", Target: "b.py"}) {
		t.Errorf("edge = %v", m.Edges[0])
	}

	// Rewriting canonical text again changes nothing: no numeric edges, no
	// comments left to touch.
	again := RewriteGraph(canonical, IDLabelMap{})
	if again != canonical {
		t.Errorf("rewrite not a fixed point:\n%q\nvs\n%q", canonical, again)
	}
}
