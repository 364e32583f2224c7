package tree

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SyntaxNode is the read-only view of a parsed syntax tree node. The tree is
// owned by the parsing collaborator; serialization walks it without taking
// ownership and never mutates it.
type SyntaxNode interface {
	// Type returns the grammar node type, e.g. "function_definition".
	Type() string

	// Children returns the ordered child nodes.
	Children() []SyntaxNode
}

// ParsedNode is a SyntaxNode decoded from the parser's JSON tree dump:
//
//	{"type": "module", "children": [{"type": "import_statement", ...}]}
//
// Source-position metadata in the dump is ignored; it belongs to the textual
// tree forms, not the graph form.
type ParsedNode struct {
	NodeType string       `json:"type"`
	Kids     []ParsedNode `json:"children"`
}

// Type implements SyntaxNode.
func (n *ParsedNode) Type() string { return n.NodeType }

// Children implements SyntaxNode.
func (n *ParsedNode) Children() []SyntaxNode {
	kids := make([]SyntaxNode, len(n.Kids))
	for i := range n.Kids {
		kids[i] = &n.Kids[i]
	}
	return kids
}

// Decode reads a JSON tree dump into a ParsedNode root.
func Decode(r io.Reader) (*ParsedNode, error) {
	var root ParsedNode
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return &root, nil
}

// DecodeFile reads a JSON tree dump from a file.
func DecodeFile(path string) (*ParsedNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
