// Package raster provides the two-value palette raster primitives used by the
// scroll engine: a fixed-size Bitmap of palette indices, an overlap-safe Blit,
// and rectangular fills.
package raster

// Rect is a half-open pixel rectangle: x in [X0, X1), y in [Y0, Y1).
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// NewRect returns a rectangle with corners in canonical order.
func NewRect(x0, y0, x1, y1 int) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the rectangle width in pixels.
func (r Rect) Width() int { return r.X1 - r.X0 }

// Height returns the rectangle height in pixels.
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Empty returns true if the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

// Intersect returns the overlap of two rectangles.
// The result satisfies Empty() if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		X0: maxInt(r.X0, other.X0),
		Y0: maxInt(r.Y0, other.Y0),
		X1: minInt(r.X1, other.X1),
		Y1: minInt(r.Y1, other.Y1),
	}
	return out
}

// Bitmap is a fixed-size raster of palette indices, one byte per pixel,
// stored in row-major order. Index values are small (typically 0 or 1) and
// index into a Palette owned by the caller.
//
// A Bitmap is allocated once and mutated in place; it is never reallocated.
type Bitmap struct {
	width  int
	height int
	pix    []uint8
}

// NewBitmap creates a bitmap of the given size with every pixel set to 0.
// Non-positive dimensions yield a bitmap with zero pixels.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Bounds returns the full-bitmap rectangle.
func (b *Bitmap) Bounds() Rect {
	return Rect{X1: b.width, Y1: b.height}
}

// Get returns the palette index at (x, y), or 0 when out of bounds.
func (b *Bitmap) Get(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// Set writes the palette index at (x, y). Out-of-bounds writes are dropped.
func (b *Bitmap) Set(x, y int, value uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = value
}

// Row returns the pixel row y as a slice aliasing the bitmap's storage.
// Callers must not hold the slice across a Blit or Fill.
func (b *Bitmap) Row(y int) []uint8 {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.pix[y*b.width : (y+1)*b.width]
}

// Pix returns the backing pixel slice in row-major order.
func (b *Bitmap) Pix() []uint8 { return b.pix }

// Clone returns a deep copy. Intended for tests and snapshots, not the
// render path.
func (b *Bitmap) Clone() *Bitmap {
	out := &Bitmap{width: b.width, height: b.height, pix: make([]uint8, len(b.pix))}
	copy(out.pix, b.pix)
	return out
}

// Equal reports whether two bitmaps have identical size and pixel content.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// Fill sets every pixel to the given palette index.
func (b *Bitmap) Fill(value uint8) {
	for i := range b.pix {
		b.pix[i] = value
	}
}

// FillRegion sets every pixel inside rect to the given palette index.
// The rectangle is clipped to the bitmap bounds.
func (b *Bitmap) FillRegion(rect Rect, value uint8) {
	rect = rect.Intersect(b.Bounds())
	if rect.Empty() {
		return
	}
	for y := rect.Y0; y < rect.Y1; y++ {
		row := b.pix[y*b.width+rect.X0 : y*b.width+rect.X1]
		for i := range row {
			row[i] = value
		}
	}
}

// Blit copies srcRect from src into dst at (dstX, dstY). All palette indices
// are copied, including the background index. The copy is clipped against
// both bitmaps.
//
// src may be dst itself: overlapping self-copies choose a row order that
// reads each source row before it is overwritten, which is what the scroll
// compositor relies on when shifting the canvas in place.
func Blit(dst *Bitmap, dstX, dstY int, src *Bitmap, srcRect Rect) {
	srcRect = srcRect.Intersect(src.Bounds())
	if srcRect.Empty() {
		return
	}

	// Clip the destination placement, shrinking the source rect to match.
	if dstX < 0 {
		srcRect.X0 -= dstX
		dstX = 0
	}
	if dstY < 0 {
		srcRect.Y0 -= dstY
		dstY = 0
	}
	if over := dstX + srcRect.Width() - dst.width; over > 0 {
		srcRect.X1 -= over
	}
	if over := dstY + srcRect.Height() - dst.height; over > 0 {
		srcRect.Y1 -= over
	}
	if srcRect.Empty() {
		return
	}

	rows := srcRect.Height()
	width := srcRect.Width()

	// Moving content downward within the same bitmap must copy bottom-up so
	// source rows are read before the copy reaches them. copy() already
	// handles horizontal overlap within a single row.
	topDown := src != dst || dstY <= srcRect.Y0
	for i := 0; i < rows; i++ {
		r := i
		if !topDown {
			r = rows - 1 - i
		}
		sy := srcRect.Y0 + r
		dy := dstY + r
		srcRow := src.pix[sy*src.width+srcRect.X0 : sy*src.width+srcRect.X0+width]
		dstRow := dst.pix[dy*dst.width+dstX : dy*dst.width+dstX+width]
		copy(dstRow, srcRow)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
