package layout

import (
	"bytes"
	"fmt"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/graph"
)

// ToDOT renders a graph model as Graphviz DOT under a hierarchical layout
// directive. Node IDs and labels are quoted with %q, so labels containing
// quotes or backslashes survive the round trip through the DOT toolchain.
func ToDOT(m *graph.Model, d Directive) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", d.RankDir)
	fmt.Fprintf(&buf, "  nodesep=%.2f;\n", d.NodeSep)
	fmt.Fprintf(&buf, "  ranksep=%.2f;\n", d.RankSep)
	fmt.Fprintf(&buf, "  esep=%.0f;\n", d.EdgeSep)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range m.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, n.Label)
	}

	buf.WriteString("\n")
	for _, e := range m.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}
