package graph

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Dialect
	}{
		{"QuotedEdge", `"a.py" -> "b.py";`, DialectQuoted},
		{"LabeledNode", `n0 [label="module"];` + "\n" + `n0 -> n1;`, DialectLabeledNode},
		{"QuotedWinsOverDecls", `n0 [label="x"];` + "\n" + `"a" -> "b";`, DialectQuoted},
		{"Empty", "", DialectLabeledNode},
		{"BareEdgesOnly", "1 -> 2;", DialectLabeledNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseQuoted(t *testing.T) {
	text := "digraph G {\n  \"main.py\" -> \"logger.py\";\n  \"main.py\" -> \"db.py\";\n  \"main.py\" -> \"logger.py\";\n}\n"
	m := Parse(text)

	if m.NodeCount() != 3 {
		t.Fatalf("nodes = %d, want 3", m.NodeCount())
	}
	// Duplicates are preserved, no implicit dedup.
	if m.EdgeCount() != 3 {
		t.Fatalf("edges = %d, want 3", m.EdgeCount())
	}
	if m.Nodes[0].ID != "main.py" || m.Nodes[1].ID != "logger.py" || m.Nodes[2].ID != "db.py" {
		t.Errorf("node order = %v", m.Nodes)
	}
	for _, n := range m.Nodes {
		if n.Label != n.ID {
			t.Errorf("label %q != id %q in quoted dialect", n.Label, n.ID)
		}
	}
	if m.Edges[0] != (Edge{Source: "main.py", Target: "logger.py"}) {
		t.Errorf("edge[0] = %v", m.Edges[0])
	}
}

func TestParseLabeledNode(t *testing.T) {
	text := `digraph ast {
  n0 [label="module"];
  n1 [label="function_definition"];
  n0 -> n1;
  n0 -> n2;
}`
	m := Parse(text)

	if m.NodeCount() != 3 {
		t.Fatalf("nodes = %d, want 3", m.NodeCount())
	}
	if n, _ := m.Node("n0"); n.Label != "module" {
		t.Errorf("n0 label = %q", n.Label)
	}
	// n2 has no declaration: materialized with its own id as label.
	if n, _ := m.Node("n2"); n.Label != "n2" {
		t.Errorf("n2 label = %q, want n2", n.Label)
	}
	// Declaration order first, then edge-implied order.
	if m.Nodes[2].ID != "n2" {
		t.Errorf("node[2] = %v, want n2", m.Nodes[2])
	}
	if m.EdgeCount() != 2 {
		t.Fatalf("edges = %d, want 2", m.EdgeCount())
	}
}

func TestParseLastDeclarationWins(t *testing.T) {
	text := `n0 [label="first"];
n0 [label="second"];
n0 -> n1;`
	m := Parse(text)
	if n, _ := m.Node("n0"); n.Label != "second" {
		t.Errorf("n0 label = %q, want second", n.Label)
	}
	if m.NodeCount() != 2 {
		t.Errorf("nodes = %d, want 2", m.NodeCount())
	}
}

func TestParseNoMatches(t *testing.T) {
	for _, text := range []string{"", "not a graph at all", "digraph G {}"} {
		m := Parse(text)
		if m.NodeCount() != 0 || m.EdgeCount() != 0 {
			t.Errorf("Parse(%q) = %d nodes %d edges, want empty", text, m.NodeCount(), m.EdgeCount())
		}
	}
}

func TestParseEscapedLabels(t *testing.T) {
	text := `n0 [label="string \"quoted\""];
n0 -> n1;`
	m := Parse(text)
	if n, _ := m.Node("n0"); n.Label != `string "quoted"` {
		t.Errorf("label = %q", n.Label)
	}
}

func TestParseDeterministic(t *testing.T) {
	text := `"a" -> "b";` + "\n" + `"b" -> "c";` + "\n" + `"a" -> "c";`
	first := Parse(text)
	second := Parse(text)

	if len(first.Nodes) != len(second.Nodes) || len(first.Edges) != len(second.Edges) {
		t.Fatal("parse not deterministic")
	}
	for i := range first.Nodes {
		if first.Nodes[i] != second.Nodes[i] {
			t.Errorf("node %d differs: %v vs %v", i, first.Nodes[i], second.Nodes[i])
		}
	}
	for i := range first.Edges {
		if first.Edges[i] != second.Edges[i] {
			t.Errorf("edge %d differs: %v vs %v", i, first.Edges[i], second.Edges[i])
		}
	}
}
