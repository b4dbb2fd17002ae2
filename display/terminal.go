package display

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/scrollbox/raster"
)

// halfBlock renders two raster rows per terminal cell: the rune's upper half
// takes the foreground color, the lower half the background color.
const halfBlock = '▀'

// Terminal presents a palette bitmap on a tcell screen using half-block
// cells, so each character cell carries two raster rows. It implements
// Surface: while auto-refresh is suspended, Present calls only touch the
// back buffer and nothing reaches the terminal until refresh resumes.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen

	bitmap  *raster.Bitmap
	palette *raster.Palette
	x, y    int // cell position of the bitmap's upper-left corner

	backdrop    tcell.Color
	autoRefresh bool
}

// NewTerminal creates a terminal surface on a fresh tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen, backdrop: tcell.ColorDefault, autoRefresh: true}, nil
}

// NewTerminalWithScreen wraps an existing screen; used by tests with a
// simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, backdrop: tcell.ColorDefault, autoRefresh: true}
}

// Init initializes the underlying screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Screen exposes the underlying tcell screen for event polling.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Attach binds the bitmap and palette this surface presents, placed with its
// upper-left corner at cell column x and raster row y.
func (t *Terminal) Attach(bitmap *raster.Bitmap, palette *raster.Palette, x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bitmap = bitmap
	t.palette = palette
	t.x = x
	t.y = y
}

// SetBackdrop sets the packed color shown through transparent palette
// entries. The zero backdrop is the terminal default.
func (t *Terminal) SetBackdrop(packed uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.backdrop = cellColor(packed)
}

// SetAutoRefresh implements Surface. Resuming refresh presents the attached
// bitmap immediately, which is how the engine's post-draw resume lands each
// animation frame on screen.
func (t *Terminal) SetAutoRefresh(enabled bool) {
	t.mu.Lock()
	wasSuspended := !t.autoRefresh
	t.autoRefresh = enabled
	t.mu.Unlock()

	if enabled && wasSuspended {
		t.Present()
	}
}

// Present draws the attached bitmap into the screen buffer and, when
// auto-refresh is enabled, shows it.
func (t *Terminal) Present() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bitmap == nil || t.palette == nil {
		return
	}

	width := t.bitmap.Width()
	height := t.bitmap.Height()
	style := tcell.StyleDefault

	for row := 0; row < height; row += 2 {
		cy := t.y + row/2
		for col := 0; col < width; col++ {
			upper := t.pixelColor(col, row)
			lower := t.backdrop
			if row+1 < height {
				lower = t.pixelColor(col, row+1)
			}
			t.screen.SetContent(t.x+col, cy, halfBlock, nil,
				style.Foreground(upper).Background(lower))
		}
	}

	if t.autoRefresh {
		t.screen.Show()
	}
}

func (t *Terminal) pixelColor(x, y int) tcell.Color {
	index := int(t.bitmap.Get(x, y))
	if t.palette.IsTransparent(index) {
		return t.backdrop
	}
	return cellColor(t.palette.Color(index))
}

// cellColor converts a packed 0xRRGGBB value to a tcell color, routing
// through colorful so component math stays in one color space.
func cellColor(packed uint32) tcell.Color {
	r, g, b := raster.RGB(packed)
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	cr, cg, cb := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

// Dimmed blends a packed color toward black by the given fraction in [0, 1].
// Used for secondary chrome such as the demo's status line.
func Dimmed(packed uint32, fraction float64) uint32 {
	r, g, b := raster.RGB(packed)
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	d := c.BlendRgb(colorful.Color{}, fraction).Clamped()
	dr, dg, db := d.RGB255()
	return uint32(dr)<<16 | uint32(dg)<<8 | uint32(db)
}
