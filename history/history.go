package history

import (
	"fmt"

	"github.com/katalvlaran/kruskalview/core"
)

// History is an ordered sequence of patches indexed 0..Len()-1, produced by
// one algorithm run. It is immutable once returned by Recorder.Done, so any
// number of readers may scrub through it concurrently.
//
// Revision is the graph topology revision the run was computed against.
type History struct {
	patches  []Patch
	revision uint64
}

// Len returns the number of steps.
func (h *History) Len() int {
	if h == nil {
		return 0
	}

	return len(h.patches)
}

// Revision returns the graph topology revision this history belongs to.
func (h *History) Revision() uint64 {
	if h == nil {
		return 0
	}

	return h.revision
}

// At returns a copy of step i.
func (h *History) At(i int) (Patch, error) {
	if i < 0 || i >= h.Len() {
		return Patch{}, fmt.Errorf("At(%d): len=%d: %w", i, h.Len(), ErrIndexOutOfRange)
	}

	return h.patches[i].clone(), nil
}

// Patches returns a copy of every step.
// Complexity: O(steps × (V + E))
func (h *History) Patches() []Patch {
	out := make([]Patch, h.Len())
	for i := range out {
		out[i] = h.patches[i].clone()
	}

	return out
}

// Messages returns the message of every step in order.
func (h *History) Messages() []string {
	out := make([]string, h.Len())
	for i := range out {
		out[i] = h.patches[i].Message
	}

	return out
}

// Last returns the final step, or false for an empty history.
func (h *History) Last() (Patch, bool) {
	if h.Len() == 0 {
		return Patch{}, false
	}

	return h.patches[len(h.patches)-1].clone(), true
}

// Recorder accumulates patches during a run. It is append-only; Done hands
// the collected steps over to a History and the Recorder must not be used
// afterwards.
type Recorder struct {
	h    *History
	done bool
}

// NewRecorder starts a history for a graph at the given topology revision.
func NewRecorder(revision uint64) *Recorder {
	return &Recorder{h: &History{revision: revision}}
}

// Record appends a full snapshot of g with msg and returns its step index.
func (r *Recorder) Record(g *core.Graph, msg string) int {
	if r.done {
		panic("history: Record after Done")
	}
	r.h.patches = append(r.h.patches, Snapshot(g, msg))

	return len(r.h.patches) - 1
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.h.patches) }

// Done seals the recorder and returns the finished History.
func (r *Recorder) Done() *History {
	r.done = true

	return r.h
}
