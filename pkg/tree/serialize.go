package tree

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Serialize walks a syntax tree depth-first in pre-order and emits an
// equivalent labeled directed graph in the labeled-node dialect: one
// declaration line per tree node and one edge line per parent→child
// relation, wrapped in a digraph envelope.
//
// IDs are assigned sequentially (n0, n1, ...) on first visit, so for a fixed
// tree the output is fully deterministic and the id↔node correspondence is a
// bijection within one invocation. An N-node tree yields exactly N
// declaration lines and N-1 edge lines.
func Serialize(name string, root SyntaxNode) string {
	var buf bytes.Buffer
	WriteDigraph(&buf, name, root)
	return buf.String()
}

// WriteDigraph writes the serialized graph to w. See [Serialize].
func WriteDigraph(w io.Writer, name string, root SyntaxNode) {
	fmt.Fprintf(w, "digraph %s {\n", name)
	if root != nil {
		next := 0
		walk(w, root, &next)
	}
	fmt.Fprintln(w, "}")
}

// walk emits the declaration for node, then recurses into its children in
// order, emitting the parent→child edge after each child's declaration.
func walk(w io.Writer, node SyntaxNode, next *int) int {
	id := *next
	*next++
	fmt.Fprintf(w, "  n%d [label=\"%s\"];\n", id, escapeLabel(node.Type()))
	for _, child := range node.Children() {
		childID := walk(w, child, next)
		fmt.Fprintf(w, "  n%d -> n%d;\n", id, childID)
	}
	return id
}

// escapeLabel escapes backslashes and double quotes so the emitted line
// stays parseable by the graph text parser, whatever the grammar calls its
// node types.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
