package convert

import (
	"encoding/json"
	"fmt"
)

// Cell is one entry of the analyzer's value-cell record: a pair of
// positional indices into the variables array plus an opaque values payload
// that is passed through untouched.
type Cell struct {
	Src    int             `json:"src"`
	Dest   int             `json:"dest"`
	Values json.RawMessage `json:"values,omitempty"`
}

// RewriteCells rewrites the structured side file that accompanies a raw
// graph: each entry of the top-level "variables" array (a path string) is
// replaced with its basename. Everything else, including the "cells" array
// with its positional src/dest indices, is copied through byte-for-byte.
// Basename substitution preserves array order, so the indices stay valid
// without adjustment.
//
// The input is decoded shallowly so that fields this tool does not know
// about survive the rewrite unchanged.
func RewriteCells(data []byte) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode cells file: %w", err)
	}

	raw, ok := doc["variables"]
	if !ok {
		return nil, fmt.Errorf("cells file has no variables array")
	}
	var variables []string
	if err := json.Unmarshal(raw, &variables); err != nil {
		return nil, fmt.Errorf("decode variables: %w", err)
	}

	for i, v := range variables {
		variables[i] = Basename(v)
	}

	rewritten, err := json.Marshal(variables)
	if err != nil {
		return nil, fmt.Errorf("encode variables: %w", err)
	}
	doc["variables"] = rewritten

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode cells file: %w", err)
	}
	return append(out, '\n'), nil
}

// ValidateCells decodes the cells array and checks that every src/dest index
// stays within [0, len(variables)). Out-of-range indices are reported, not
// repaired; the conversion still writes the rewritten file.
func ValidateCells(data []byte) error {
	var doc struct {
		Variables []string `json:"variables"`
		Cells     []Cell   `json:"cells"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode cells file: %w", err)
	}
	n := len(doc.Variables)
	for i, c := range doc.Cells {
		if c.Src < 0 || c.Src >= n || c.Dest < 0 || c.Dest >= n {
			return fmt.Errorf("cell %d: index out of range (src=%d dest=%d, %d variables)", i, c.Src, c.Dest, n)
		}
	}
	return nil
}
