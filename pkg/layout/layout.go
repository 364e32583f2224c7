package layout

import (
	"math"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/graph"
)

// Radial placement constants. The radius scales with node count but is
// clamped on both sides: a handful of nodes still gets a readable circle,
// and large graphs stay inside the canvas.
const (
	RadiusPerNode = 40.0
	MinRadius     = 120.0
	MaxRadius     = 300.0

	// Default canvas dimensions; the radial center sits at the middle.
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// DefaultCenter is the fixed canvas point radial layouts are centered on.
var DefaultCenter = Point{X: DefaultWidth / 2, Y: DefaultHeight / 2}

// Point is a 2D canvas coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlacedNode is a graph node with an assigned position.
type PlacedNode struct {
	graph.Node
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout is a graph model with exactly one position per node.
type Layout struct {
	Nodes []PlacedNode `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// Radius returns the clamped radial-layout radius for n nodes.
func Radius(n int) float64 {
	r := RadiusPerNode * float64(n)
	return math.Min(math.Max(r, MinRadius), MaxRadius)
}

// Radial places every node of m on a circle around center, in the model's
// stable iteration order: node i sits at angle i·2π/max(1,n), so node 0
// always lands at center + (radius, 0).
func Radial(m *graph.Model, center Point) Layout {
	n := m.NodeCount()
	radius := Radius(n)
	step := 2 * math.Pi / math.Max(1, float64(n))

	out := Layout{
		Nodes: make([]PlacedNode, n),
		Edges: m.Edges,
	}
	for i, node := range m.Nodes {
		angle := float64(i) * step
		out.Nodes[i] = PlacedNode{
			Node: node,
			X:    center.X + radius*math.Cos(angle),
			Y:    center.Y + radius*math.Sin(angle),
		}
	}
	return out
}

// Directive describes a delegated hierarchical layout: no coordinates are
// computed here, the layout engine assigns ranks top-to-bottom and is
// responsible for avoiding overlap. Used for AST overlays, where variable
// subtree width makes manual radial placement unsuitable.
type Directive struct {
	RankDir string  // rank direction, "TB" for top-to-bottom
	NodeSep float64 // minimum separation between nodes in a rank, in inches
	RankSep float64 // minimum separation between ranks, in inches
	EdgeSep float64 // minimum separation between edges, in points
}

// DefaultDirective returns the hierarchical directive used for AST overlays.
func DefaultDirective() Directive {
	return Directive{RankDir: "TB", NodeSep: 0.3, RankSep: 0.5, EdgeSep: 10}
}
