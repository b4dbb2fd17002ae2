// Package textlayout wraps raw text into an ordered sequence of lines
// positioned in the unbounded virtual row space the scroll engine windows
// onto. It consumes only pixel metrics; rasterization happens elsewhere.
package textlayout

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// Font supplies the metrics layout needs: vertical extents of a line cell and
// the typeset pixel width of a string.
type Font interface {
	// LineMetrics returns the ascent and descent in whole pixels.
	LineMetrics() (ascent, descent int)

	// Advance returns the pixel width of text typeset on one line.
	Advance(text string) int
}

// Line is one wrapped line placed in virtual row space. Top is the first row
// of the line's cell, Anchor the baseline row, Bottom the row after the
// descender space.
type Line struct {
	Text   string
	Top    int
	Anchor int
	Bottom int
}

// Layout is the ordered line sequence for one text/font/width combination.
// Lines are sorted by ascending Top with a fixed stride between them.
type Layout struct {
	Lines []Line

	// MaxRow is the virtual row one stride past the last line: the lower
	// bound of the scrollable range.
	MaxRow int

	// Stride is the row distance between consecutive line tops.
	Stride int
}

// Build wraps text into lines that fit within pixelWidth−xOffset and places
// them starting at yOffset. Explicit line breaks in the input are honored,
// and wrapped segments that come out empty still occupy a line so vertical
// spacing stays correct.
func Build(text string, font Font, pixelWidth, xOffset, yOffset int, lineSpacing float64) *Layout {
	ascent, descent := font.LineMetrics()
	stride := int(math.Round(float64(ascent+descent) * lineSpacing))
	if stride < 1 {
		stride = 1
	}

	maxWidth := pixelWidth - xOffset
	wrapped := wrapToPixels(text, font, maxWidth)

	layout := &Layout{
		Lines:  make([]Line, 0, len(wrapped)),
		Stride: stride,
	}
	top := yOffset
	for _, s := range wrapped {
		layout.Lines = append(layout.Lines, Line{
			Text:   s,
			Top:    top,
			Anchor: top + ascent,
			Bottom: top + ascent + descent,
		})
		top += stride
	}
	layout.MaxRow = top
	return layout
}

// wrapToPixels splits text on explicit breaks, then greedily packs words into
// lines no wider than maxWidth. Words wider than maxWidth are force-broken at
// grapheme cluster boundaries so no cluster is ever split.
func wrapToPixels(text string, font Font, maxWidth int) []string {
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		out = append(out, wrapParagraph(paragraph, font, maxWidth)...)
	}
	return out
}

func wrapParagraph(paragraph string, font Font, maxWidth int) []string {
	if paragraph == "" {
		return []string{""}
	}

	var lines []string
	var current string
	flush := func() {
		lines = append(lines, current)
		current = ""
	}

	for _, word := range strings.Fields(paragraph) {
		for _, piece := range splitWord(word, font, maxWidth) {
			candidate := piece
			if current != "" {
				candidate = current + " " + piece
			}
			if current != "" && font.Advance(candidate) > maxWidth {
				flush()
				candidate = piece
			}
			current = candidate
		}
	}
	if current != "" || len(lines) == 0 {
		flush()
	}
	return lines
}

// splitWord breaks a single word into pieces that each fit within maxWidth.
// A piece always holds at least one grapheme cluster, so progress is
// guaranteed even when one cluster alone exceeds the width.
func splitWord(word string, font Font, maxWidth int) []string {
	if font.Advance(word) <= maxWidth {
		return []string{word}
	}

	var pieces []string
	var current strings.Builder
	gr := uniseg.NewGraphemes(word)
	for gr.Next() {
		cluster := gr.Str()
		if current.Len() > 0 && font.Advance(current.String()+cluster) > maxWidth {
			pieces = append(pieces, current.String())
			current.Reset()
		}
		current.WriteString(cluster)
	}
	if current.Len() > 0 {
		pieces = append(pieces, current.String())
	}
	return pieces
}
