package textlayout

import (
	"strings"
	"testing"
)

// fixedFont is a monospace test double: every rune advances advance pixels.
type fixedFont struct {
	ascent  int
	descent int
	advance int
}

func (f fixedFont) LineMetrics() (int, int) { return f.ascent, f.descent }

func (f fixedFont) Advance(text string) int {
	n := 0
	for range text {
		n++
	}
	return n * f.advance
}

func lineTexts(l *Layout) []string {
	out := make([]string, len(l.Lines))
	for i, ln := range l.Lines {
		out[i] = ln.Text
	}
	return out
}

func TestBuildPlacement(t *testing.T) {
	font := fixedFont{ascent: 8, descent: 2, advance: 5}
	l := Build("one\ntwo\nthree", font, 100, 0, 0, 1.0)

	if len(l.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(l.Lines))
	}
	if l.Stride != 10 {
		t.Fatalf("stride = %d, want 10", l.Stride)
	}
	for i, ln := range l.Lines {
		wantTop := i * 10
		if ln.Top != wantTop || ln.Anchor != wantTop+8 || ln.Bottom != wantTop+10 {
			t.Errorf("line %d = top %d anchor %d bottom %d, want %d/%d/%d",
				i, ln.Top, ln.Anchor, ln.Bottom, wantTop, wantTop+8, wantTop+10)
		}
	}
	if l.MaxRow != 30 {
		t.Errorf("MaxRow = %d, want 30", l.MaxRow)
	}
}

func TestBuildOffsets(t *testing.T) {
	font := fixedFont{ascent: 8, descent: 2, advance: 5}
	l := Build("a b c d", font, 20, 5, 7, 1.0)

	// 20−5 = 15 px usable, one 5px rune per line cell pair: "a b" is 15px.
	if got := lineTexts(l); !equalStrings(got, []string{"a b", "c d"}) {
		t.Fatalf("lines = %q, want [a b, c d]", got)
	}
	if l.Lines[0].Top != 7 {
		t.Errorf("first top = %d, want y offset 7", l.Lines[0].Top)
	}
	// MaxRow = yOffset + lines*stride.
	if l.MaxRow != 7+2*10 {
		t.Errorf("MaxRow = %d, want 27", l.MaxRow)
	}
}

func TestBuildLineSpacing(t *testing.T) {
	font := fixedFont{ascent: 8, descent: 2, advance: 5}

	tests := []struct {
		name       string
		spacing    float64
		wantStride int
	}{
		{"single", 1.0, 10},
		{"one and a half", 1.5, 15},
		{"rounded", 1.24, 12},
		{"tight clamps to one", 0.01, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Build("x\ny", font, 100, 0, 0, tt.spacing)
			if l.Stride != tt.wantStride {
				t.Errorf("stride = %d, want %d", l.Stride, tt.wantStride)
			}
			if l.Lines[1].Top != tt.wantStride {
				t.Errorf("second top = %d, want %d", l.Lines[1].Top, tt.wantStride)
			}
		})
	}
}

func TestWrapGreedy(t *testing.T) {
	font := fixedFont{ascent: 8, descent: 2, advance: 10}

	// 50 px wide, 10 px per rune: five runes per line including joiners.
	l := Build("aa bb cc", font, 50, 0, 0, 1.0)
	if got := lineTexts(l); !equalStrings(got, []string{"aa bb", "cc"}) {
		t.Errorf("lines = %q, want [aa bb, cc]", got)
	}
}

func TestWrapEmptySegments(t *testing.T) {
	font := fixedFont{ascent: 8, descent: 2, advance: 5}

	t.Run("blank middle line is preserved", func(t *testing.T) {
		l := Build("top\n\nbottom", font, 100, 0, 0, 1.0)
		if got := lineTexts(l); !equalStrings(got, []string{"top", "", "bottom"}) {
			t.Errorf("lines = %q, want [top, , bottom]", got)
		}
		if l.Lines[2].Top != 20 {
			t.Errorf("third top = %d, want 20 (blank line keeps its stride)", l.Lines[2].Top)
		}
	})

	t.Run("empty text yields one line", func(t *testing.T) {
		l := Build("", font, 100, 0, 0, 1.0)
		if len(l.Lines) != 1 || l.Lines[0].Text != "" {
			t.Errorf("lines = %q, want one empty line", lineTexts(l))
		}
		if l.MaxRow != 10 {
			t.Errorf("MaxRow = %d, want 10", l.MaxRow)
		}
	})
}

func TestWrapLongWord(t *testing.T) {
	font := fixedFont{ascent: 8, descent: 2, advance: 10}

	t.Run("force broken to width", func(t *testing.T) {
		l := Build("abcdefgh", font, 30, 0, 0, 1.0)
		want := []string{"abc", "def", "gh"}
		if got := lineTexts(l); !equalStrings(got, want) {
			t.Errorf("lines = %q, want %q", got, want)
		}
	})

	t.Run("oversized cluster still makes progress", func(t *testing.T) {
		l := Build("abc", font, 5, 0, 0, 1.0)
		want := []string{"a", "b", "c"}
		if got := lineTexts(l); !equalStrings(got, want) {
			t.Errorf("lines = %q, want %q", got, want)
		}
	})
}

func TestMaxRowSumsStrides(t *testing.T) {
	font := fixedFont{ascent: 8, descent: 2, advance: 5}
	texts := []string{"", "hello", "a\nb\nc", "word " + strings.Repeat("x", 40)}
	for _, text := range texts {
		l := Build(text, font, 60, 0, 4, 1.0)
		if l.MaxRow != 4+len(l.Lines)*l.Stride {
			t.Errorf("text %q: MaxRow = %d, want yOffset + %d*%d", text, l.MaxRow, len(l.Lines), l.Stride)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
