// Package scrollbox renders a scrollable multi-line text panel onto a fixed
// two-color raster, animating every move of the visible window. The canvas is
// allocated once and shifted in place; only the rows a move newly exposes are
// repainted, using lazily cached per-line bitmaps.
package scrollbox

import (
	"fmt"
	"sync"
	"time"

	"github.com/dshills/scrollbox/easing"
	"github.com/dshills/scrollbox/internal/dirty"
	"github.com/dshills/scrollbox/internal/linecache"
	"github.com/dshills/scrollbox/internal/textlayout"
	"github.com/dshills/scrollbox/raster"
)

// Font supplies the metrics used to lay text out: line-cell vertical extents
// and typeset advance widths. glyph.Face adapts a golang.org/x/image
// font.Face into this interface.
type Font interface {
	// LineMetrics returns the ascent and descent in whole pixels.
	LineMetrics() (ascent, descent int)

	// Advance returns the pixel width of text typeset on one line.
	Advance(text string) int
}

// Rasterizer renders one line of text into the smallest bounding two-value
// bitmap plus the vertical offset from the baseline anchor to the bitmap's
// top edge. A nil bitmap means the line has no visible glyphs.
type Rasterizer interface {
	Rasterize(text string) (*raster.Bitmap, int, error)
}

// Surface is the display collaborator. The engine suspends auto-refresh
// before each draw and resumes it afterward so partially shifted frames are
// never presented; display.Terminal satisfies this.
type Surface interface {
	SetAutoRefresh(enabled bool)
}

// Positionable reports pixel placement on the parent surface.
type Positionable interface {
	X() int
	Y() int
	Width() int
	Height() int
}

// Interactive is the scroll-input capability.
type Interactive interface {
	Scroll(deltaPixels int)
	ScrollToRow(row int)
}

// Config configures a ScrollBox. Start from DefaultConfig and set Text, Font
// and Surface.
type Config struct {
	// X, Y place the box's upper-left corner on the parent surface.
	X, Y int

	// Width, Height are the canvas size in pixels. Both must be positive.
	Width, Height int

	// XOffset, YOffset inset the text within the canvas.
	XOffset, YOffset int

	// Text is the initial content; it may contain line breaks.
	Text string

	// Font provides layout metrics. Required.
	Font Font

	// Rasterizer renders line bitmaps. Optional when Font also implements
	// Rasterizer, as glyph.Face does.
	Rasterizer Rasterizer

	// Color and BackgroundColor are packed 0xRRGGBB palette entries.
	Color           uint32
	BackgroundColor uint32

	// BackgroundTransparent marks the background palette entry transparent.
	BackgroundTransparent bool

	// LineSpacing scales the stride between line tops. Must be positive.
	LineSpacing float64

	// StartingRow is the virtual row initially aligned to the canvas top.
	StartingRow int

	// AnimationTime is the default scroll duration. Must not be negative.
	AnimationTime time.Duration

	// Easing is the animation curve; it must be monotonic with f(0)=0 and
	// f(1)=1. Defaults to easing.ExpoInOut.
	Easing easing.Function

	// Surface receives the refresh suspend/resume signals. Optional; a nil
	// surface disables the signaling.
	Surface Surface

	// RetainBitmaps disables the post-scroll eviction of line bitmaps that
	// fell outside the visible window.
	RetainBitmaps bool
}

// DefaultConfig returns the baseline configuration: a 100x50 canvas, white
// text on an opaque black background, single spacing and a 200ms scroll.
func DefaultConfig() Config {
	return Config{
		Width:           100,
		Height:          50,
		Color:           0xFFFFFF,
		BackgroundColor: 0x000000,
		LineSpacing:     1.0,
		AnimationTime:   200 * time.Millisecond,
		Easing:          easing.ExpoInOut,
	}
}

// ScrollBox owns a fixed-size two-color canvas windowing onto wrapped text
// in virtual row space. All mutation goes through its methods; the canvas is
// never reallocated. It implements Positionable and Interactive.
type ScrollBox struct {
	mu sync.Mutex

	x, y             int
	width, height    int
	xOffset, yOffset int

	text          string
	font          Font
	rasterizer    Rasterizer
	lineSpacing   float64
	animationTime time.Duration
	easing        easing.Function
	surface       Surface
	retainBitmaps bool

	bitmap  *raster.Bitmap
	palette *raster.Palette
	layout  *textlayout.Layout
	cache   *linecache.Cache
	dirty   *dirty.Tracker

	// currentRow is the virtual row aligned to the canvas top. Always within
	// [0, layout.MaxRow] at every externally observable point.
	currentRow int
}

// nopSurface stands in when no display surface is configured.
type nopSurface struct{}

func (nopSurface) SetAutoRefresh(bool) {}

// New validates the configuration, lays out the initial text and renders the
// starting row with a zero-duration scroll.
func New(cfg Config) (*ScrollBox, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.LineSpacing <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidSpacing, cfg.LineSpacing)
	}
	if cfg.AnimationTime < 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidDuration, cfg.AnimationTime)
	}
	if cfg.Font == nil {
		return nil, ErrNilFont
	}
	rasterizer := cfg.Rasterizer
	if rasterizer == nil {
		r, ok := cfg.Font.(Rasterizer)
		if !ok {
			return nil, ErrNilRasterizer
		}
		rasterizer = r
	}
	easingFn := cfg.Easing
	if easingFn == nil {
		easingFn = easing.ExpoInOut
	}
	surface := cfg.Surface
	if surface == nil {
		surface = nopSurface{}
	}

	palette := raster.NewPalette(cfg.BackgroundColor, cfg.Color)
	palette.SetTransparent(0, cfg.BackgroundTransparent)

	b := &ScrollBox{
		x:             cfg.X,
		y:             cfg.Y,
		width:         cfg.Width,
		height:        cfg.Height,
		xOffset:       cfg.XOffset,
		yOffset:       cfg.YOffset,
		text:          cfg.Text,
		font:          cfg.Font,
		rasterizer:    rasterizer,
		lineSpacing:   cfg.LineSpacing,
		animationTime: cfg.AnimationTime,
		easing:        easingFn,
		surface:       surface,
		retainBitmaps: cfg.RetainBitmaps,
		bitmap:        raster.NewBitmap(cfg.Width, cfg.Height),
		palette:       palette,
		dirty:         dirty.New(),
	}
	b.cache = linecache.New(rasterizer)

	b.mu.Lock()
	b.rebuild()
	b.mu.Unlock()
	b.ScrollToRowTimed(cfg.StartingRow, 0)

	return b, nil
}

// rebuild lays the current text out again, drops every cached line bitmap,
// clears the canvas and marks all of it dirty. Callers must hold mu and
// follow up with a zero-duration scroll to row 0 (or the starting row).
func (b *ScrollBox) rebuild() {
	b.layout = textlayout.Build(b.text, b.font, b.width, b.xOffset, b.yOffset, b.lineSpacing)
	b.cache.ClearAll()
	b.bitmap.Fill(0)
	b.dirty.ResetFull(b.height)
}

// Bitmap returns the canvas for display surfaces to present. The engine
// mutates it in place; it is never reallocated.
func (b *ScrollBox) Bitmap() *raster.Bitmap { return b.bitmap }

// Palette returns the two-entry palette backing the canvas.
func (b *ScrollBox) Palette() *raster.Palette { return b.palette }

// X returns the horizontal placement of the box.
func (b *ScrollBox) X() int { return b.x }

// Y returns the vertical placement of the box.
func (b *ScrollBox) Y() int { return b.y }

// Width returns the canvas width in pixels.
func (b *ScrollBox) Width() int { return b.width }

// Height returns the canvas height in pixels.
func (b *ScrollBox) Height() int { return b.height }

// CurrentRow returns the virtual row currently aligned to the canvas top.
func (b *ScrollBox) CurrentRow() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentRow
}

// MaxRow returns the lower bound of the scrollable range: the virtual row
// one stride past the last line.
func (b *ScrollBox) MaxRow() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.layout.MaxRow
}

// Text returns the current content.
func (b *ScrollBox) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// SetText replaces the content, rebuilds the layout and scrolls back to the
// top without animation.
func (b *ScrollBox) SetText(text string) {
	b.mu.Lock()
	b.text = text
	b.rebuild()
	b.mu.Unlock()
	b.ScrollToRowTimed(0, 0)
}

// FontFace returns the current font collaborator.
func (b *ScrollBox) FontFace() Font {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.font
}

// SetFont replaces the font (and, when the font implements Rasterizer, the
// rasterizer with it), rebuilds the layout and scrolls back to the top
// without animation. A nil font is ignored.
func (b *ScrollBox) SetFont(font Font) {
	if font == nil {
		return
	}
	b.mu.Lock()
	b.font = font
	if r, ok := font.(Rasterizer); ok {
		b.rasterizer = r
		b.cache.SetRasterizer(r)
	}
	b.rebuild()
	b.mu.Unlock()
	b.ScrollToRowTimed(0, 0)
}

// Color returns the packed foreground color.
func (b *ScrollBox) Color() uint32 { return b.palette.Color(1) }

// SetColor replaces the foreground color. Takes effect on the next present;
// no pixels change.
func (b *ScrollBox) SetColor(color uint32) { b.palette.SetColor(1, color) }

// BackgroundColor returns the packed background color.
func (b *ScrollBox) BackgroundColor() uint32 { return b.palette.Color(0) }

// SetBackgroundColor replaces the background color.
func (b *ScrollBox) SetBackgroundColor(color uint32) { b.palette.SetColor(0, color) }

// BackgroundTransparent reports whether the background entry is transparent.
func (b *ScrollBox) BackgroundTransparent() bool { return b.palette.IsTransparent(0) }

// SetBackgroundTransparent marks or unmarks the background entry transparent.
func (b *ScrollBox) SetBackgroundTransparent(transparent bool) {
	b.palette.SetTransparent(0, transparent)
}

// CacheStats returns the line-bitmap cache counters.
func (b *ScrollBox) CacheStats() linecache.Stats {
	return b.cache.Stats()
}

var (
	_ Positionable = (*ScrollBox)(nil)
	_ Interactive  = (*ScrollBox)(nil)
)
