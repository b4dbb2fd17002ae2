// Package dirty tracks the virtual-row interval that needs redrawing. The
// scroll compositor consumes a single half-open interval: each pending scroll
// widens it, and a completed animation clears it.
package dirty

// Tracker accumulates the dirty interval [min, max) in virtual rows.
// The zero value is an empty tracker.
type Tracker struct {
	min, max int
	dirty    bool
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{}
}

// ResetFull marks the interval [0, canvasHeight) dirty, replacing any
// accumulated interval. Used after a layout rebuild, when every visible
// pixel is stale.
func (t *Tracker) ResetFull(canvasHeight int) {
	t.min = 0
	t.max = canvasHeight
	t.dirty = true
}

// Extend widens the interval by the band a pending scroll of deltaPixels will
// newly expose. A positive delta exposes a band below the current window, a
// negative delta exposes one above it; zero is a no-op. The union is taken by
// independently widening min and max.
func (t *Tracker) Extend(deltaPixels, currentRow, canvasHeight int) {
	if deltaPixels == 0 {
		return
	}

	var lo, hi int
	if deltaPixels > 0 {
		lo = currentRow + canvasHeight
		hi = currentRow + canvasHeight + deltaPixels
	} else {
		lo = currentRow + deltaPixels
		hi = currentRow
	}

	if !t.dirty {
		t.min = lo
		t.max = hi
		t.dirty = true
		return
	}
	if lo < t.min {
		t.min = lo
	}
	if hi > t.max {
		t.max = hi
	}
}

// Region returns the dirty interval [min, max) and whether one is pending.
func (t *Tracker) Region() (min, max int, ok bool) {
	if !t.dirty {
		return 0, 0, false
	}
	return t.min, t.max, true
}

// IsDirty reports whether any rows are pending redraw.
func (t *Tracker) IsDirty() bool {
	return t.dirty
}

// Clear empties the interval. Called once a full animated move has landed.
func (t *Tracker) Clear() {
	t.min = 0
	t.max = 0
	t.dirty = false
}
