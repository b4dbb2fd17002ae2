// Package linecache lazily rasterizes line text into bitmaps and memoizes
// the result per line. Bitmaps can be released individually or in bulk to
// bound memory on constrained hosts; a cleared line is re-rasterized
// transparently on its next access.
package linecache

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/scrollbox/raster"
)

// Rasterizer renders one line of text into the smallest bounding two-value
// bitmap, returning the vertical offset from the baseline anchor to the
// bitmap's top edge. A nil bitmap means the line has no visible glyphs.
type Rasterizer interface {
	Rasterize(text string) (*raster.Bitmap, int, error)
}

type entry struct {
	bitmap *raster.Bitmap
	offset int
}

// Cache memoizes per-line bitmaps keyed by line index. Eviction timing is the
// caller's policy; the cache only provides the release operations.
type Cache struct {
	mu         sync.Mutex
	rasterizer Rasterizer
	entries    map[int]*entry

	hits      atomic.Uint64
	misses    atomic.Uint64
	failures  atomic.Uint64
	evictions atomic.Uint64
}

// New creates an empty cache backed by the given rasterizer.
func New(rasterizer Rasterizer) *Cache {
	return &Cache{
		rasterizer: rasterizer,
		entries:    make(map[int]*entry),
	}
}

// SetRasterizer replaces the rasterizer and drops all cached bitmaps.
func (c *Cache) SetRasterizer(rasterizer Rasterizer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rasterizer = rasterizer
	c.entries = make(map[int]*entry)
}

// Bitmap returns the rendered bitmap and anchor offset for the line at index,
// rasterizing and caching it on first access. Blank lines return a nil
// bitmap; the caller skips blitting for them. A rasterization failure
// degrades the line to blank rather than propagating: the row advance is
// unaffected and the failure is counted in Stats.
func (c *Cache) Bitmap(index int, text string) (*raster.Bitmap, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[index]; ok {
		c.hits.Add(1)
		return e.bitmap, e.offset
	}
	c.misses.Add(1)

	bitmap, offset, err := c.rasterizer.Rasterize(text)
	if err != nil {
		c.failures.Add(1)
		bitmap, offset = nil, 0
	}
	c.entries[index] = &entry{bitmap: bitmap, offset: offset}
	return bitmap, offset
}

// Clear releases the cached bitmap for one line.
func (c *Cache) Clear(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[index]; ok {
		delete(c.entries, index)
		c.evictions.Add(1)
	}
}

// ClearAll releases every cached bitmap. Called when text or font changes.
func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictions.Add(uint64(len(c.entries)))
	c.entries = make(map[int]*entry)
}

// EvictOutside releases every cached line whose index falls outside
// [lo, hi]. The engine calls this after a completed scroll with the range of
// lines touching the visible window, so at most one screenful of bitmaps
// stays warm.
func (c *Cache) EvictOutside(lo, hi int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for index := range c.entries {
		if index < lo || index > hi {
			delete(c.entries, index)
			c.evictions.Add(1)
		}
	}
}

// Stats describes cache occupancy and effectiveness.
type Stats struct {
	Resident  int    // cached lines, blanks included
	Bytes     int    // approximate bitmap memory held
	Hits      uint64
	Misses    uint64
	Failures  uint64
	Evictions uint64
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	bytes := 0
	for _, e := range c.entries {
		if e.bitmap != nil {
			bytes += e.bitmap.Width() * e.bitmap.Height()
		}
	}
	return Stats{
		Resident:  len(c.entries),
		Bytes:     bytes,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Failures:  c.failures.Load(),
		Evictions: c.evictions.Load(),
	}
}
