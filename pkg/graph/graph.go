package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Model - Canonical Graph Structure
// =============================================================================

// Model is the canonical structural form of a parsed graph: a set of nodes
// with unique IDs and an ordered sequence of directed edges. Duplicate edges
// are permitted and preserved; node insertion order is stable and used for
// deterministic default layout.
type Model struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	index map[string]int // node ID → position in Nodes
}

// Node is a graph node with a unique ID and a display label.
// The label defaults to the ID when no declaration provides one.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Edge is a directed edge between two node IDs.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// New returns an empty Model.
func New() *Model {
	return &Model{index: make(map[string]int)}
}

// EnsureNode adds a node with the given ID if it is not already present.
// If the node exists and label is non-empty, the label is overwritten
// (last write wins). An empty label falls back to the ID itself.
func (m *Model) EnsureNode(id, label string) {
	if m.index == nil {
		m.rebuildIndex()
	}
	if label == "" {
		label = id
	}
	if i, ok := m.index[id]; ok {
		m.Nodes[i].Label = label
		return
	}
	m.index[id] = len(m.Nodes)
	m.Nodes = append(m.Nodes, Node{ID: id, Label: label})
}

// AddEdge appends a directed edge, materializing any missing endpoint as a
// node whose label equals its own ID. Duplicates are kept.
func (m *Model) AddEdge(source, target string) {
	if !m.Has(source) {
		m.EnsureNode(source, "")
	}
	if !m.Has(target) {
		m.EnsureNode(target, "")
	}
	m.Edges = append(m.Edges, Edge{Source: source, Target: target})
}

// Has reports whether a node with the given ID exists.
func (m *Model) Has(id string) bool {
	if m.index == nil {
		m.rebuildIndex()
	}
	_, ok := m.index[id]
	return ok
}

// Node returns the node with the given ID, if present.
func (m *Model) Node(id string) (Node, bool) {
	if m.index == nil {
		m.rebuildIndex()
	}
	i, ok := m.index[id]
	if !ok {
		return Node{}, false
	}
	return m.Nodes[i], true
}

// NodeCount returns the number of nodes.
func (m *Model) NodeCount() int { return len(m.Nodes) }

// EdgeCount returns the number of edges, duplicates included.
func (m *Model) EdgeCount() int { return len(m.Edges) }

// rebuildIndex reconstructs the ID index, e.g. after JSON decoding.
func (m *Model) rebuildIndex() {
	m.index = make(map[string]int, len(m.Nodes))
	for i, n := range m.Nodes {
		m.index[n.ID] = i
	}
}

// =============================================================================
// Serialization
// =============================================================================

// Marshal encodes a Model as pretty-printed node-link JSON.
func Marshal(m *Model) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Write encodes a Model as node-link JSON to w.
func Write(m *Model, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a Model to a JSON file at path.
func WriteFile(m *Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(m, f)
}

// Read decodes node-link JSON from r into a Model.
func Read(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	m.rebuildIndex()
	return &m, nil
}
