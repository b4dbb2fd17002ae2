package scrollbox

import (
	"github.com/dshills/scrollbox/raster"
)

// drawAt moves the visible window to newRow and patches the canvas. The
// previous window's pixels are reused by shifting the canvas in place; only
// the rows inside the pending dirty interval are repainted from line
// bitmaps. Callers must hold mu.
func (b *ScrollBox) drawAt(newRow int) {
	if newRow < 0 {
		newRow = 0
	}
	if newRow > b.layout.MaxRow {
		newRow = b.layout.MaxRow
	}

	delta := b.currentRow - newRow
	h := b.height

	switch {
	case delta >= h || delta <= -h:
		// The new window shares no rows with the old one. Fill with the
		// background index even when that index is transparent; exposed
		// rows always read 0 regardless of which path produced them.
		b.bitmap.Fill(0)
	case delta > 0:
		// Content moves down: row y takes the old row y-delta, and the band
		// [0, delta) is newly exposed.
		raster.Blit(b.bitmap, 0, delta, b.bitmap, b.bitmap.Bounds())
		b.bitmap.FillRegion(raster.Rect{X1: b.width, Y1: delta}, 0)
	case delta < 0:
		// Content moves up: the band at the bottom is newly exposed.
		raster.Blit(b.bitmap, 0, 0, b.bitmap, raster.NewRect(0, -delta, b.width, h))
		b.bitmap.FillRegion(raster.Rect{X1: b.width, Y0: h + delta, Y1: h}, 0)
	}

	b.currentRow = newRow

	regionMin, regionMax, ok := b.dirty.Region()
	if !ok {
		return
	}

	// Lines are ordered by ascending top, so scan linearly: skip everything
	// that ends before the region, stop at the first line starting past it.
	for i := range b.layout.Lines {
		line := &b.layout.Lines[i]
		if line.Bottom < regionMin {
			continue
		}
		if line.Top > regionMax {
			break
		}

		bitmap, anchorOffset := b.cache.Bitmap(i, line.Text)
		if bitmap == nil {
			// Blank line: consumes its stride but no pixels.
			continue
		}

		// Intersect the dirty interval, the line's rendered extent and the
		// visible window, all in virtual rows.
		bitmapTop := line.Anchor + anchorOffset
		spanStart := max3(regionMin, bitmapTop, b.currentRow)
		spanEnd := min3(regionMax, bitmapTop+bitmap.Height(), b.currentRow+h)

		srcY0 := spanStart - bitmapTop
		srcY1 := spanEnd - bitmapTop
		if srcY0 < 0 || srcY1 > bitmap.Height() || srcY0 >= srcY1 {
			// Degenerate or out-of-bitmap span; the overlap contributes no
			// pixels, which is normal for partially exposed lines.
			continue
		}

		raster.Blit(b.bitmap, b.xOffset, spanStart-b.currentRow, bitmap,
			raster.NewRect(0, srcY0, bitmap.Width(), srcY1))
	}
}

// evictOffscreen releases cached bitmaps for lines entirely outside the
// visible window. Called after a completed scroll unless RetainBitmaps is
// set. Callers must hold mu.
func (b *ScrollBox) evictOffscreen() {
	if b.retainBitmaps {
		return
	}

	winTop := b.currentRow
	winBottom := b.currentRow + b.height

	lo, hi := 0, -1
	for i := range b.layout.Lines {
		line := &b.layout.Lines[i]
		if line.Bottom <= winTop {
			lo = i + 1
			continue
		}
		if line.Top >= winBottom {
			break
		}
		hi = i
	}
	if hi < lo {
		// No line intersects the window; drop everything.
		b.cache.ClearAll()
		return
	}
	b.cache.EvictOutside(lo, hi)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
