package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/graph"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/layout"
)

// =============================================================================
// Overlay State Machine
// =============================================================================

// State is the overlay's lifecycle state.
type State int

const (
	// StateIdle: no overlay shown.
	StateIdle State = iota
	// StateLoading: a node was activated, its secondary graph is in flight.
	StateLoading
	// StateDisplaying: the secondary graph is parsed, laid out and shown.
	StateDisplaying
	// StateFailed: every candidate location failed; the failure lists them.
	StateFailed
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateDisplaying:
		return "displaying"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Fetcher retrieves the artifact at a candidate location. Implementations
// signal absence with an error; the resolver moves on to the next location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, location string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, location string) ([]byte, error) {
	return f(ctx, location)
}

// Overlay models the node-activation overlay: Idle → Loading →
// {Displaying, Failed}, re-entrant from any state via a new activation.
//
// Activations are tagged with a monotonic generation counter. Responses for
// a superseded activation (a newer Activate happened while the fetch was in
// flight) are dropped at Resolve/Fail time, so a late out-of-order response
// can never clobber the overlay for a different node.
type Overlay struct {
	mu      sync.Mutex
	state   State
	title   string // activated node ID, shown as the overlay title
	gen     uint64
	model   *graph.Model
	dot     string
	failure string
}

// NewOverlay returns an overlay in the Idle state.
func NewOverlay() *Overlay {
	return &Overlay{state: StateIdle}
}

// State returns the current state.
func (o *Overlay) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Title returns the activated node's ID, or empty when idle.
func (o *Overlay) Title() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.title
}

// Model returns the displayed secondary graph, nil unless Displaying.
func (o *Overlay) Model() *graph.Model {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.model
}

// DOT returns the hierarchical-layout DOT for the displayed graph.
func (o *Overlay) DOT() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dot
}

// Failure returns the human-readable failure message, empty unless Failed.
func (o *Overlay) Failure() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.failure
}

// Activate transitions to Loading for the given node, clearing any prior
// content or error, and returns the generation token the eventual Resolve
// or Fail call must present.
func (o *Overlay) Activate(nodeID string) uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.gen++
	o.state = StateLoading
	o.title = nodeID
	o.model = nil
	o.dot = ""
	o.failure = ""
	return o.gen
}

// Resolve completes an activation: the fetched text is parsed, laid out in
// delegated hierarchical mode, and displayed. A stale generation (the
// activation was superseded) is dropped; Resolve reports whether it applied.
func (o *Overlay) Resolve(gen uint64, text string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.gen || o.state != StateLoading {
		return false
	}
	m := graph.Parse(text)
	o.model = m
	o.dot = layout.ToDOT(m, layout.DefaultDirective())
	o.state = StateDisplaying
	return true
}

// Fail records an exhausted resolution: the message enumerates every
// attempted location in order. Stale generations are dropped.
func (o *Overlay) Fail(gen uint64, nodeID string, attempted []string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.gen || o.state != StateLoading {
		return false
	}
	o.failure = resolutionFailure(nodeID, attempted)
	o.state = StateFailed
	return true
}

// Dismiss returns to Idle, clearing all overlay state. Triggered by an
// explicit close action or a click outside the content region; clicks
// inside the content must not reach the dismiss handler.
func (o *Overlay) Dismiss() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateIdle
	o.title = ""
	o.model = nil
	o.dot = ""
	o.failure = ""
}

// Load runs one full activation: derive the candidate locations for nodeID,
// resolve the artifact, and apply the outcome under the activation's
// generation token. Safe to call from a goroutine per activation; a newer
// activation supersedes this one and its outcome is silently dropped.
func (o *Overlay) Load(ctx context.Context, f Fetcher, nodeID string) {
	gen := o.Activate(nodeID)
	text, err := ResolveArtifact(ctx, f, nodeID)
	if err != nil {
		var rerr *ResolutionError
		if errors.As(err, &rerr) {
			o.Fail(gen, nodeID, rerr.Attempted)
		} else {
			o.Fail(gen, nodeID, CandidateLocations(nodeID))
		}
		return
	}
	o.Resolve(gen, text)
}

// =============================================================================
// Artifact Resolution
// =============================================================================

// ResolutionError reports that no candidate location yielded the artifact.
type ResolutionError struct {
	NodeID    string
	Attempted []string // every location tried, in order
}

// Error lists every attempted location.
func (e *ResolutionError) Error() string {
	return resolutionFailure(e.NodeID, e.Attempted)
}

// ResolveArtifact tries each candidate location for nodeID in order and
// returns the first successfully fetched artifact text. Locations are
// evaluated lazily: the first success stops the scan. If every location
// fails, the returned *ResolutionError carries the full attempted list.
func ResolveArtifact(ctx context.Context, f Fetcher, nodeID string) (string, error) {
	var attempted []string
	for _, loc := range CandidateLocations(nodeID) {
		attempted = append(attempted, loc)
		data, err := f.Fetch(ctx, loc)
		if err == nil {
			return string(data), nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", &ResolutionError{NodeID: nodeID, Attempted: attempted}
}

func resolutionFailure(nodeID string, attempted []string) string {
	return fmt.Sprintf("no syntax tree found for %q; tried: %s",
		nodeID, strings.Join(attempted, ", "))
}
