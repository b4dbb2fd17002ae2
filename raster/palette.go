package raster

// Palette holds the packed 0xRRGGBB colors the bitmap's indices resolve to.
// Index 0 is the background and may be marked transparent; index 1 is the
// foreground. Color changes take effect on the next present without touching
// pixel data.
type Palette struct {
	colors      [2]uint32
	transparent [2]bool
}

// NewPalette creates a two-entry palette with the given background and
// foreground colors. Both entries start opaque.
func NewPalette(background, foreground uint32) *Palette {
	return &Palette{colors: [2]uint32{background, foreground}}
}

// Color returns the packed color for the given index, or 0 when out of range.
func (p *Palette) Color(index int) uint32 {
	if index < 0 || index >= len(p.colors) {
		return 0
	}
	return p.colors[index]
}

// SetColor replaces the packed color for the given index.
func (p *Palette) SetColor(index int, color uint32) {
	if index < 0 || index >= len(p.colors) {
		return
	}
	p.colors[index] = color
}

// IsTransparent reports whether the given index is marked transparent.
func (p *Palette) IsTransparent(index int) bool {
	if index < 0 || index >= len(p.transparent) {
		return false
	}
	return p.transparent[index]
}

// SetTransparent marks or unmarks the given index as transparent. Transparent
// indices are skipped by display surfaces; fills and blits still write them.
func (p *Palette) SetTransparent(index int, transparent bool) {
	if index < 0 || index >= len(p.transparent) {
		return
	}
	p.transparent[index] = transparent
}

// RGB splits a packed 0xRRGGBB color into components.
func RGB(packed uint32) (r, g, b uint8) {
	return uint8(packed >> 16), uint8(packed >> 8), uint8(packed)
}
