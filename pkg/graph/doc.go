// Package graph defines the canonical structural model for converted
// dependency and syntax-tree graphs, and the best-effort parser that
// recovers that model from textual graph artifacts.
//
// # Model
//
// A [Model] is a set of nodes (unique ID, display label) plus an ordered
// sequence of directed edges. Duplicate edges are preserved, and every edge
// endpoint is guaranteed to exist as a node: endpoints without an explicit
// declaration are materialized with the raw ID as their label.
//
// # Dialects
//
// Two textual encodings are supported, selected per parse call by a single
// probe ([Classify]):
//
//	"main.py" -> "logger.py";      quoted dialect, label doubles as ID
//	n0 [label="module"];           labeled-node dialect, declarations
//	n0 -> n1;                      plus bare-identifier edges
//
// [Parse] never returns an error. Text that matches neither dialect yields
// an empty model; the only consumer is a visualizer, where an empty render
// is the correct degraded outcome.
//
// # Serialization
//
// Models serialize to a simple node-link JSON form:
//
//	{
//	  "nodes": [{"id": "main.py", "label": "main.py"}],
//	  "edges": [{"source": "main.py", "target": "logger.py"}]
//	}
package graph
