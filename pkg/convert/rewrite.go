package convert

import (
	"fmt"
	"regexp"
	"strings"
)

// numericEdgeRe matches a raw numeric edge line, capturing the leading
// whitespace so the rewrite preserves indentation:
//
//	<ws><digits> -> <digits>;
var numericEdgeRe = regexp.MustCompile(`^(\s*)(\d+)\s*->\s*(\d+)\s*;\s*$`)

// commentLineRe matches a full comment line, including the ID table entries
// consumed by ResolveLabels.
var commentLineRe = regexp.MustCompile(`^\s*//`)

// RewriteGraph rewrites a raw numeric-ID graph text into the canonical
// quoted-label form. Every numeric edge is rewritten through the label map
// (unresolved IDs keep the raw ID as label), every comment line is deleted,
// and blank lines are dropped. All other lines, including the digraph
// envelope, pass through unchanged.
//
// This is a pure text transform: it never builds a structural model. The
// structural parse happens later and independently in pkg/graph.
func RewriteGraph(text string, labels IDLabelMap) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if commentLineRe.MatchString(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if match := numericEdgeRe.FindStringSubmatch(line); match != nil {
			line = fmt.Sprintf("%s%q -> %q;", match[1], labels.Label(match[2]), labels.Label(match[3]))
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}
