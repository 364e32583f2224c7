// Package layout assigns positions to graph models.
//
// Two strategies are provided. [Radial] computes explicit coordinates,
// placing nodes on a circle whose radius grows with node count within fixed
// bounds; it is deterministic and used for the dependency view. The
// hierarchical [Directive] computes nothing: it describes a top-to-bottom
// rank layout with configurable separations and is handed to Graphviz via
// [ToDOT], which owns overlap avoidance. The AST overlay uses the delegated
// mode because subtree widths vary too much for manual placement.
//
// Both strategies give every node exactly one position or one layout
// directive; nothing is orphaned or placed twice.
package layout
