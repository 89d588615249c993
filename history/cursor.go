package history

// Cursor tracks a playback position inside one History. It never mutates
// the history; moving the cursor only changes Index. Pair it with Seek to
// bring a graph to the current step.
//
// All moves clamp to [0, Len()-1]. A cursor over an empty history stays at 0.
type Cursor struct {
	h     *History
	index int
}

// NewCursor returns a cursor positioned at step 0 of h.
func NewCursor(h *History) *Cursor {
	return &Cursor{h: h}
}

// History returns the history this cursor walks.
func (c *Cursor) History() *History { return c.h }

// Index returns the current step index.
func (c *Cursor) Index() int { return c.index }

// Len returns the number of steps available.
func (c *Cursor) Len() int { return c.h.Len() }

// AtEnd reports whether the cursor sits on the last step.
func (c *Cursor) AtEnd() bool { return c.index >= c.h.Len()-1 }

// Next advances one step and reports whether the position changed.
func (c *Cursor) Next() bool { return c.Seek(c.index + 1) }

// Prev moves back one step and reports whether the position changed.
func (c *Cursor) Prev() bool { return c.Seek(c.index - 1) }

// Reset moves back to step 0.
func (c *Cursor) Reset() { c.index = 0 }

// End moves to the last step.
func (c *Cursor) End() { c.Seek(c.h.Len() - 1) }

// Seek jumps to step i, clamped to the valid range, and reports whether the
// position changed.
func (c *Cursor) Seek(i int) bool {
	last := c.h.Len() - 1
	if i > last {
		i = last
	}
	if i < 0 {
		i = 0
	}
	moved := i != c.index
	c.index = i

	return moved
}

// Current returns the patch at the cursor, or false for an empty history.
func (c *Cursor) Current() (Patch, bool) {
	p, err := c.h.At(c.index)
	if err != nil {
		return Patch{}, false
	}

	return p, true
}
