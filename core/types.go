// Package core defines the Node, Link and Graph types shared by the MST
// history engine, the patch applier and the editing layer.
//
// This file declares Status, Node, Link, Graph, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyGraph      - operation needs at least one node.
//	ErrNodeNotFound    - a node id does not exist.
//	ErrLinkNotFound    - a link id does not exist.
//	ErrSelfLoop        - link endpoints are the same node.
//	ErrNegativeWeight  - link weight is below zero.
//	ErrDuplicateLink   - the unordered node pair is already linked.
//	ErrBadStatus       - unknown Status text.
//	ErrMalformedGraph  - Validate found a broken precondition.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyGraph indicates an operation that needs at least one node.
	ErrEmptyGraph = errors.New("core: graph has no nodes")

	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLinkNotFound indicates an operation referenced a non-existent link id.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrSelfLoop indicates a link whose source and target are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a link weight below zero.
	ErrNegativeWeight = errors.New("core: negative weight")

	// ErrDuplicateLink indicates a second link between the same unordered pair.
	ErrDuplicateLink = errors.New("core: duplicate link")

	// ErrBadStatus indicates an unknown textual Status.
	ErrBadStatus = errors.New("core: unknown link status")

	// ErrMalformedGraph indicates that Validate found a broken invariant.
	ErrMalformedGraph = errors.New("core: malformed graph")
)

// Status is the display/algorithm state of a Link.
type Status uint8

const (
	// StatusNormal marks a link that is not yet considered, or confirmed as
	// part of the spanning tree.
	StatusNormal Status = iota

	// StatusActive marks the link currently being evaluated.
	StatusActive

	// StatusInactive marks a link that was rejected (it would close a cycle)
	// or that has not been reached in the current run.
	StatusInactive
)

var statusNames = [...]string{
	StatusNormal:   "normal",
	StatusActive:   "active",
	StatusInactive: "inactive",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("Status(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler so that YAML and JSON
// codecs write the readable form.
func (s Status) MarshalText() ([]byte, error) {
	if int(s) >= len(statusNames) {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, uint8(s))
	}

	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// ParseStatus converts "normal", "active" or "inactive" into a Status.
func ParseStatus(text string) (Status, error) {
	for i, name := range statusNames {
		if name == text {
			return Status(i), nil
		}
	}

	return StatusNormal, fmt.Errorf("%w: %q", ErrBadStatus, text)
}

// Node is a vertex of the visualized graph.
//
// ID is assigned by insertion order (0..n-1) and doubles as a slice index.
// ColorGroup names the connected component the node currently belongs to;
// it starts equal to ID. X and Y belong to the rendering layer and are
// never read by the algorithms.
type Node struct {
	ID         int
	ColorGroup int
	X, Y       float64
}

// Link is an undirected weighted edge between two nodes.
//
// Source/Target order only matters for display. ID is unique and stable
// for the lifetime of a history. Change Weight through Graph.SetWeight so
// the topology revision moves and recorded histories go stale.
type Link struct {
	ID     int
	Source int
	Target int
	Weight float64
	Status Status
}

// Other returns the endpoint opposite to id.
func (l *Link) Other(id int) int {
	if l.Source == id {
		return l.Target
	}

	return l.Source
}

// Touches reports whether id is one of the link endpoints.
func (l *Link) Touches(id int) bool {
	return l.Source == id || l.Target == id
}

// Graph is the caller-owned collection of nodes and links.
//
// Nodes are kept in id order, so Nodes[i].ID == i. Links keep their
// insertion order, which is also the tie-break order of the MST engine.
// revision is bumped on every topology change so that histories computed
// against an older topology can be rejected.
//
// A Graph is not safe for concurrent mutation.
type Graph struct {
	Nodes []*Node
	Links []*Link

	nextLinkID int
	revision   uint64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{}
}
