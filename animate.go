package scrollbox

import (
	"math"
	"time"
)

// stepGranularity bounds how long the blocking scroll loop sleeps between
// animation samples.
const stepGranularity = 5 * time.Millisecond

// Animation is one scroll move expressed as an explicit stepping function,
// so any scheduler (a frame callback, or the blocking loop in Scroll) can
// drive it. Creating the animation extends the engine's dirty interval;
// finishing it performs the exact terminal draw and clears it.
//
// An Animation is not safe for concurrent use and must be driven to
// completion before the next one starts.
type Animation struct {
	box      *ScrollBox
	startRow int
	delta    int
	duration time.Duration
	started  time.Time
	done     bool
}

// NewAnimation begins a scroll of deltaPixels over the given duration and
// returns its stepper. A negative duration is treated as zero.
func (b *ScrollBox) NewAnimation(deltaPixels int, duration time.Duration) *Animation {
	if duration < 0 {
		duration = 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.dirty.Extend(deltaPixels, b.currentRow, b.height)
	return &Animation{
		box:      b,
		startRow: b.currentRow,
		delta:    deltaPixels,
		duration: duration,
	}
}

// Step advances the animation to the given time and reports whether it has
// completed. While the duration has not elapsed it draws the eased
// intermediate row; the first call past the duration (immediately, for a
// zero duration) performs the exact terminal draw at start+delta and clears
// the dirty interval.
func (a *Animation) Step(now time.Time) bool {
	if a.done {
		return true
	}
	if a.started.IsZero() {
		a.started = now
	}

	elapsed := now.Sub(a.started)
	if elapsed < a.duration {
		fraction := float64(elapsed) / float64(a.duration)
		eased := a.box.easingAt(fraction)
		row := a.startRow + int(math.Round(eased*float64(a.delta)))
		a.box.drawFrame(row)
		return false
	}

	a.Finish()
	return true
}

// Finish performs the terminal draw at the exact target row, clears the
// dirty interval and applies the bitmap eviction policy. Safe to call more
// than once; it runs only the first time.
func (a *Animation) Finish() {
	if a.done {
		return
	}
	a.done = true

	a.box.drawFrame(a.startRow + a.delta)

	a.box.mu.Lock()
	a.box.dirty.Clear()
	a.box.evictOffscreen()
	a.box.mu.Unlock()
}

// drawFrame runs one compositor pass with the surface's auto-refresh
// suspended for the duration of the draw. The resume is deferred so it runs
// on every exit path.
func (b *ScrollBox) drawFrame(row int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.surface.SetAutoRefresh(false)
	defer b.surface.SetAutoRefresh(true)

	b.drawAt(row)
}

func (b *ScrollBox) easingAt(fraction float64) float64 {
	b.mu.Lock()
	fn := b.easing
	b.mu.Unlock()
	return fn(fraction)
}

// Scroll moves the window deltaPixels rows using the default animation time.
// Positive deltas move the text upward (revealing content below). The call
// blocks until the animation lands exactly on the clamped target.
func (b *ScrollBox) Scroll(deltaPixels int) {
	b.ScrollTimed(deltaPixels, b.defaultDuration())
}

// ScrollTimed is Scroll with an explicit duration. A zero duration performs
// exactly one compositor pass at the target row.
func (b *ScrollBox) ScrollTimed(deltaPixels int, duration time.Duration) {
	anim := b.NewAnimation(deltaPixels, duration)
	for !anim.Step(time.Now()) {
		time.Sleep(stepGranularity)
	}
}

// ScrollToRow scrolls so the given virtual row is aligned to the canvas top,
// using the default animation time. Out-of-range rows are clamped to
// [0, MaxRow].
func (b *ScrollBox) ScrollToRow(row int) {
	b.ScrollToRowTimed(row, b.defaultDuration())
}

// ScrollToRowTimed is ScrollToRow with an explicit duration.
func (b *ScrollBox) ScrollToRowTimed(row int, duration time.Duration) {
	b.mu.Lock()
	delta := row - b.currentRow
	b.mu.Unlock()
	b.ScrollTimed(delta, duration)
}

func (b *ScrollBox) defaultDuration() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.animationTime
}
