// Package view implements the interactive graph view's node-activation
// overlay: the state machine that loads and displays a secondary graph (an
// AST fragment) when a rendered node is activated.
//
// # States
//
//	Idle → Loading → {Displaying, Failed}
//
// Activating a node from any state re-enters Loading. Each activation gets a
// monotonic generation token; a response arriving after a newer activation
// is stale and dropped, so slow fetches can never overwrite a newer
// overlay. Dismissal (explicit close, or a click outside the content
// region) returns to Idle.
//
// # Resolution
//
// Node IDs do not map 1:1 to artifact locations. [CandidateLocations]
// derives an ordered list of plausible locations from the ID, and
// [ResolveArtifact] tries them lazily, stopping at the first success. Total
// failure produces a [ResolutionError] enumerating every attempted
// location, which the overlay surfaces verbatim so the user can see exactly
// where the tool looked.
//
// The same state machine backs the terminal inspector and, mirrored in the
// viewer page's script, the browser overlay.
package view
