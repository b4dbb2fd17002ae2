// Package glyph adapts a golang.org/x/image/font.Face into the metric and
// rasterization collaborators the scroll engine consumes. Rasterization draws
// each line onto an alpha coverage buffer and thresholds it into the engine's
// two-value palette bitmap.
package glyph

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/dshills/scrollbox/raster"
)

// coverageThreshold is the alpha value at or above which a coverage sample
// becomes a foreground pixel in the two-value bitmap.
const coverageThreshold = 0x80

// Face wraps a font.Face. It is safe to share one Face across layouts as long
// as the underlying font.Face is not used concurrently; x/image faces are not
// goroutine-safe.
type Face struct {
	face font.Face
}

// New wraps the given font.Face.
func New(face font.Face) *Face {
	return &Face{face: face}
}

// LineMetrics returns the ascent and descent of the face in whole pixels.
func (f *Face) LineMetrics() (ascent, descent int) {
	m := f.face.Metrics()
	return m.Ascent.Ceil(), m.Descent.Ceil()
}

// Advance returns the pixel width of text when typeset on one line.
func (f *Face) Advance(text string) int {
	return font.MeasureString(f.face, text).Ceil()
}

// Rasterize renders one line of text into the smallest bitmap that bounds its
// glyphs, using palette index 1 for covered pixels. The returned offset is
// the vertical distance from the baseline to the bitmap's top edge (negative
// when glyphs rise above the baseline, which is the usual case).
//
// Lines with no visible glyphs return a nil bitmap and no error.
func (f *Face) Rasterize(text string) (*raster.Bitmap, int, error) {
	if text == "" {
		return nil, 0, nil
	}

	bounds, _ := font.BoundString(f.face, text)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if width <= 0 || height <= 0 {
		// Whitespace-only line: advances but covers nothing.
		return nil, 0, nil
	}

	// Draw with the dot placed so the bounding box lands at the origin.
	cover := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  cover,
		Src:  image.NewUniform(color.Alpha{A: 0xFF}),
		Face: f.face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(text)

	bitmap := raster.NewBitmap(width, height)
	for y := 0; y < height; y++ {
		row := cover.Pix[y*cover.Stride : y*cover.Stride+width]
		out := bitmap.Row(y)
		for x, a := range row {
			if a >= coverageThreshold {
				out[x] = 1
			}
		}
	}

	anchorOffset := bounds.Min.Y.Floor()
	return bitmap, anchorOffset, nil
}
