package convert

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// IDLabelMap maps the analyzer's opaque numeric node IDs (as strings) to
// display labels. It is built once per raw graph text and not mutated after
// construction.
type IDLabelMap map[string]string

// commentRe matches the analyzer's out-of-band ID table entries:
//
//	// 7:/some/path/main.py
var commentRe = regexp.MustCompile(`^\s*//\s*(\d+):(.+)$`)

// ResolveLabels scans every comment line of a raw graph text and builds the
// ID→label map. The label is the final path segment of the commented path.
// Later duplicate IDs overwrite earlier ones; no matches yields an empty
// map, never an error. Edge lines are not touched.
func ResolveLabels(text string) IDLabelMap {
	labels := make(IDLabelMap)
	for _, line := range strings.Split(text, "\n") {
		match := commentRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		labels[match[1]] = Basename(strings.TrimSpace(match[2]))
	}
	return labels
}

// Label resolves an ID to its display label, falling back to the raw ID when
// no mapping exists. An unresolved ID is not an error: the visualizer's
// value is graceful degradation, not strict validation.
func (m IDLabelMap) Label(id string) string {
	if label, ok := m[id]; ok {
		return label
	}
	return id
}

// Basename returns the final segment of a path in either separator
// convention. Analyzer output may carry host-native Windows paths even when
// the converter runs elsewhere.
func Basename(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	base := path.Base(p)
	if base == "." || base == string(filepath.Separator) {
		return p
	}
	return base
}
