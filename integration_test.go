package scrollbox_test

import (
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/dshills/scrollbox"
	"github.com/dshills/scrollbox/glyph"
)

// End-to-end over a real font face: layout, rasterization and scrolling
// through the public API only.
func TestScrollBoxWithBitmapFont(t *testing.T) {
	face := glyph.New(basicfont.Face7x13)

	cfg := scrollbox.DefaultConfig()
	cfg.Width = 70
	cfg.Height = 26
	cfg.Text = "hello world\nsecond line\nthird line\nfourth line"
	cfg.Font = face
	cfg.AnimationTime = 0

	b, err := scrollbox.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Face7x13 reports ascent 11, descent 2, so each line occupies 13 rows.
	if got := b.MaxRow(); got != 4*13 {
		t.Errorf("MaxRow = %d, want %d", got, 4*13)
	}

	countInk := func() int {
		n := 0
		for _, v := range b.Bitmap().Pix() {
			if v != 0 {
				n++
			}
		}
		return n
	}

	if countInk() == 0 {
		t.Fatal("initial render produced no glyph pixels")
	}
	initial := b.Bitmap().Clone()

	// Scroll a full window away and back; the landing canvas must match the
	// initial one exactly.
	b.ScrollToRow(b.MaxRow())
	if b.CurrentRow() != b.MaxRow() {
		t.Fatalf("CurrentRow = %d, want %d", b.CurrentRow(), b.MaxRow())
	}
	b.ScrollToRow(0)
	if !b.Bitmap().Equal(initial) {
		t.Error("scrolling away and back changed the rendered canvas")
	}
}

func TestScrollBoxWrapsRealText(t *testing.T) {
	face := glyph.New(basicfont.Face7x13)

	cfg := scrollbox.DefaultConfig()
	cfg.Width = 50 // seven columns of 7px glyphs
	cfg.Height = 26
	cfg.Text = "alpha beta gamma"
	cfg.Font = face
	cfg.AnimationTime = 0

	b, err := scrollbox.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// "alpha beta" is 70px and cannot share a 50px line with anything;
	// each word lands on its own line.
	if got := b.MaxRow(); got != 3*13 {
		t.Errorf("MaxRow = %d, want %d", got, 3*13)
	}
}
