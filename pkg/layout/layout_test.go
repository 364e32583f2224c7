package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/graph"
)

func TestRadius(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, 120},  // lower clamp
		{1, 120},  // 40 would be degenerate
		{3, 120},  // exactly at the lower bound
		{5, 200},  // linear region
		{100, 300}, // upper clamp, not 4000
	}
	for _, tt := range tests {
		if got := Radius(tt.n); got != tt.want {
			t.Errorf("Radius(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestRadialPlacement(t *testing.T) {
	m := graph.New()
	m.AddEdge("a.py", "b.py")

	l := Radial(m, DefaultCenter)
	if len(l.Nodes) != 2 {
		t.Fatalf("placed %d nodes, want 2", len(l.Nodes))
	}

	// Node 0 lands at center + (radius, 0); node 1 at angle π for n=2.
	r := Radius(2)
	if l.Nodes[0].X != DefaultCenter.X+r || l.Nodes[0].Y != DefaultCenter.Y {
		t.Errorf("node 0 at (%v, %v)", l.Nodes[0].X, l.Nodes[0].Y)
	}
	if math.Abs(l.Nodes[1].X-(DefaultCenter.X-r)) > 1e-9 || math.Abs(l.Nodes[1].Y-DefaultCenter.Y) > 1e-9 {
		t.Errorf("node 1 at (%v, %v), want (%v, %v)", l.Nodes[1].X, l.Nodes[1].Y, DefaultCenter.X-r, DefaultCenter.Y)
	}
}

func TestRadialEveryNodePlacedOnce(t *testing.T) {
	m := graph.New()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"a", "d"}} {
		m.AddEdge(e[0], e[1])
	}

	l := Radial(m, DefaultCenter)
	if len(l.Nodes) != m.NodeCount() {
		t.Fatalf("placed %d nodes, want %d", len(l.Nodes), m.NodeCount())
	}
	seen := make(map[string]bool)
	for _, n := range l.Nodes {
		if seen[n.ID] {
			t.Errorf("node %s placed twice", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestRadialEmptyModel(t *testing.T) {
	l := Radial(graph.New(), DefaultCenter)
	if len(l.Nodes) != 0 {
		t.Errorf("placed %d nodes for empty model", len(l.Nodes))
	}
}

func TestToDOT(t *testing.T) {
	m := graph.New()
	m.EnsureNode("n0", `label with "quotes"`)
	m.AddEdge("n0", "n1")

	dot := ToDOT(m, DefaultDirective())

	if !strings.Contains(dot, "rankdir=TB;") {
		t.Errorf("missing rankdir:\n%s", dot)
	}
	if !strings.Contains(dot, "nodesep=0.30;") || !strings.Contains(dot, "ranksep=0.50;") {
		t.Errorf("missing separations:\n%s", dot)
	}
	if !strings.Contains(dot, `"n0" [label="label with \"quotes\""];`) {
		t.Errorf("label not escaped:\n%s", dot)
	}
	if !strings.Contains(dot, `"n0" -> "n1";`) {
		t.Errorf("edge missing:\n%s", dot)
	}
}
