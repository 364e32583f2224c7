// Package tree serializes parsed syntax trees into labeled directed graph
// artifacts.
//
// The parsing collaborator produces trees; this package only borrows them
// through the read-only [SyntaxNode] interface and emits the labeled-node
// graph dialect consumed by pkg/graph:
//
//	digraph ast {
//	  n0 [label="module"];
//	  n1 [label="import_statement"];
//	  n0 -> n1;
//	}
//
// [ParsedNode] adapts the parser's JSON tree dumps to the interface.
package tree
