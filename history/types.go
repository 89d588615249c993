// Package history defines the replayable history of an algorithm run: an
// ordered, append-only sequence of full-state patches, plus the applier and
// cursor a playback layer uses to scrub through it.
package history

import (
	"errors"

	"github.com/katalvlaran/kruskalview/core"
)

// ErrIndexOutOfRange indicates a step index outside [0, Len()).
var ErrIndexOutOfRange = errors.New("history: step index out of range")

// ErrUnknownNode indicates a patch entry naming a node id absent from the graph.
var ErrUnknownNode = errors.New("history: patch references unknown node")

// ErrUnknownLink indicates a patch entry naming a link id absent from the graph.
var ErrUnknownLink = errors.New("history: patch references unknown link")

// ErrStaleHistory indicates that the graph topology changed after the
// history was computed. The history must be discarded and recomputed.
var ErrStaleHistory = errors.New("history: graph topology changed since history was recorded")

// ErrNilGraph indicates a nil *core.Graph argument.
var ErrNilGraph = errors.New("history: nil graph")

// NodeState is the mutable part of a node captured by a patch.
type NodeState struct {
	NodeID     int `json:"nodeId" yaml:"nodeId"`
	ColorGroup int `json:"colorGroup" yaml:"colorGroup"`
}

// LinkState is the mutable part of a link captured by a patch.
type LinkState struct {
	LinkID int         `json:"linkId" yaml:"linkId"`
	Status core.Status `json:"status" yaml:"status"`
}

// Patch is a full snapshot of every node's colour group and every link's
// status at one algorithm step, with a human-readable message.
//
// Patches are not deltas: applying patch k alone reproduces state k.
type Patch struct {
	Nodes   []NodeState `json:"nodes" yaml:"nodes"`
	Links   []LinkState `json:"links" yaml:"links"`
	Message string      `json:"msg" yaml:"msg"`
}

// clone returns a deep copy so callers can never alias recorded state.
func (p Patch) clone() Patch {
	out := Patch{
		Nodes:   make([]NodeState, len(p.Nodes)),
		Links:   make([]LinkState, len(p.Links)),
		Message: p.Message,
	}
	copy(out.Nodes, p.Nodes)
	copy(out.Links, p.Links)

	return out
}

// Snapshot captures the current state of g as a Patch with the given message.
// Nodes and links are listed in the graph's own order.
// Complexity: O(V + E)
func Snapshot(g *core.Graph, msg string) Patch {
	p := Patch{
		Nodes:   make([]NodeState, len(g.Nodes)),
		Links:   make([]LinkState, len(g.Links)),
		Message: msg,
	}
	for i, n := range g.Nodes {
		p.Nodes[i] = NodeState{NodeID: n.ID, ColorGroup: n.ColorGroup}
	}
	for i, l := range g.Links {
		p.Links[i] = LinkState{LinkID: l.ID, Status: l.Status}
	}

	return p
}
