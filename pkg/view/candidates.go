package view

import (
	"path"
	"strings"
)

// ASTPrefix is the fixed sub-path AST fragment artifacts live under,
// relative to the artifact root.
const ASTPrefix = "ast"

// TreeSuffix marks artifacts produced by the syntax-tree serializer.
const TreeSuffix = ".ast"

// CandidateLocations derives the ordered list of locations to try when
// resolving the secondary graph for an activated node. Node IDs are not
// guaranteed to map 1:1 to a single well-known artifact location: the ID may
// be a bare filename or a project-relative path, and the tree artifacts may
// or may not carry the tree suffix. So every plausible spelling is tried in
// a fixed order, most specific first:
//
//	ast/<id>.ast.dot
//	ast/<id>.dot
//	ast/<basename(id)>.ast.dot
//	ast/<basename(id)>.dot
//	ast/<slug(id)>.ast.dot        slug = path separators replaced by "_"
//	ast/<slug(id)>.dot
//
// Exact duplicates are removed, order preserved. The list is a pure function
// of the node ID.
func CandidateLocations(nodeID string) []string {
	stems := []string{
		nodeID,
		path.Base(nodeID),
		slug(nodeID),
	}

	seen := make(map[string]bool)
	var out []string
	for _, stem := range stems {
		for _, suffix := range []string{TreeSuffix + ".dot", ".dot"} {
			loc := path.Join(ASTPrefix, stem+suffix)
			if seen[loc] {
				continue
			}
			seen[loc] = true
			out = append(out, loc)
		}
	}
	return out
}

// slug flattens a path-like node ID into a single filename segment.
func slug(id string) string {
	id = strings.ReplaceAll(id, "\\", "/")
	return strings.ReplaceAll(id, "/", "_")
}
