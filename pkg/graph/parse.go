package graph

import (
	"regexp"
	"strings"
)

// =============================================================================
// Dialect Classification
// =============================================================================

// Dialect identifies one of the supported textual graph encodings.
type Dialect int

const (
	// DialectQuoted is the canonical form: edges written as
	// "label" -> "label"; with labels embedded directly.
	DialectQuoted Dialect = iota

	// DialectLabeledNode is the declaration form: nodes declared as
	// id [label="text"]; with bare-identifier edges id -> id;.
	DialectLabeledNode
)

// String returns the dialect name for logging.
func (d Dialect) String() string {
	if d == DialectQuoted {
		return "quoted"
	}
	return "labeled-node"
}

var (
	quotedEdgeRe = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"\s*->\s*"((?:[^"\\]|\\.)*)"`)
	nodeDeclRe   = regexp.MustCompile(`([\w.\-]+)\s*\[\s*label\s*=\s*"((?:[^"\\]|\\.)*)"\s*\]\s*;`)
	bareEdgeRe   = regexp.MustCompile(`([\w.\-]+)\s*->\s*([\w.\-]+)\s*;`)
)

// Classify determines which dialect a graph text is written in. The probe is
// a single substring test: any quoted edge selects the quoted dialect, even
// if labeled-node syntax also appears. Classification is a pure function of
// the text; there is no parser state carried between calls.
func Classify(text string) Dialect {
	if quotedEdgeRe.MatchString(text) {
		return DialectQuoted
	}
	return DialectLabeledNode
}

// =============================================================================
// Parsing
// =============================================================================

// Parse recovers a structural Model from a graph text in either supported
// dialect. Parsing is best-effort and never fails: malformed text simply
// contributes no nodes or edges, and text with no matches at all yields an
// empty model. Same text in, same model out.
func Parse(text string) *Model {
	if Classify(text) == DialectQuoted {
		return parseQuoted(text)
	}
	return parseLabeledNode(text)
}

// parseQuoted extracts every "label" -> "label" edge. The label doubles as
// the node ID in this dialect; there is no separate numeric ID space.
func parseQuoted(text string) *Model {
	m := New()
	for _, match := range quotedEdgeRe.FindAllStringSubmatch(text, -1) {
		m.AddEdge(unescapeLabel(match[1]), unescapeLabel(match[2]))
	}
	return m
}

// parseLabeledNode first collects the id→label declarations (single pass,
// last write per id wins), then the bare-identifier edges. Edge endpoints
// without a declaration are materialized with the raw id as their label, so
// node discovery order is declaration order followed by edge-implied order.
func parseLabeledNode(text string) *Model {
	m := New()
	for _, match := range nodeDeclRe.FindAllStringSubmatch(text, -1) {
		m.EnsureNode(match[1], unescapeLabel(match[2]))
	}
	for _, match := range bareEdgeRe.FindAllStringSubmatch(text, -1) {
		m.AddEdge(match[1], match[2])
	}
	return m
}

// unescapeLabel reverses the quote escaping applied when labels are written
// into graph text.
func unescapeLabel(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
