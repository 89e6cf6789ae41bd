package cursorblur

import "image"

// GlyphCacheStats counts cache activity. Regens is the number of tinted
// raster regenerations; tests and debug output use it to verify that a
// shape change regenerates at most once.
type GlyphCacheStats struct {
	Hits     uint64
	Regens   uint64
	Failures uint64
}

// GlyphCache caches the tinted raster of the current cursor shape, keyed by
// shape identity. The glyph and its tinted raster regenerate together, so
// the raster dimensions always track the cached identity. Refresh is called
// once per frame; it is a cheap identity comparison unless the system
// cursor actually changed.
//
// The cache owns the tinted raster. Regeneration tears down the previous
// raster before building the next, so at most one tinted surface is alive
// at any time.
//
// GlyphCache is NOT thread-safe; it is owned by the main loop.
type GlyphCache struct {
	tint Tint

	lastID GlyphID

	glyph  *Glyph
	tinted *image.RGBA

	stats GlyphCacheStats
}

// NewGlyphCache creates a cache applying the given tint.
func NewGlyphCache(tint Tint) *GlyphCache {
	return &GlyphCache{tint: tint}
}

// Refresh updates the cached tinted raster for the cursor shape with the
// given identity. A no-op when the identity is unchanged since the last
// call. On change the provider rasterizes the shape once and the raster is
// tinted channel-by-channel (c' = c*tint/255, alpha untouched).
//
// If introspection fails the previous cached shape is retained; a stale
// cursor shape for one frame is preferable to dropping the frame.
func (c *GlyphCache) Refresh(id GlyphID, p GlyphProvider) {
	if c.tinted != nil && id == c.lastID {
		c.stats.Hits++
		return
	}

	g, err := p.Glyph(id)
	if err != nil || g == nil {
		c.stats.Failures++
		return
	}

	w, h := g.Width, g.Height
	if w <= 0 {
		w = DefaultGlyphSize
	}
	if h <= 0 {
		h = DefaultGlyphSize
	}

	// Drop the previous raster before allocating the next; the cache never
	// holds two tinted surfaces at once.
	c.tinted = nil

	tinted := image.NewRGBA(image.Rect(0, 0, w, h))
	if g.Pixels != nil {
		src := g.Pixels
		sb := src.Bounds()
		cw := min(w, sb.Dx())
		ch := min(h, sb.Dy())
		for y := 0; y < ch; y++ {
			si := src.PixOffset(sb.Min.X, sb.Min.Y+y)
			di := tinted.PixOffset(0, y)
			for x := 0; x < cw; x++ {
				tinted.Pix[di+0] = applyTint(src.Pix[si+0], c.tint.R)
				tinted.Pix[di+1] = applyTint(src.Pix[si+1], c.tint.G)
				tinted.Pix[di+2] = applyTint(src.Pix[si+2], c.tint.B)
				tinted.Pix[di+3] = src.Pix[si+3]
				si += 4
				di += 4
			}
		}
	}

	c.glyph = &Glyph{
		ID:     id,
		Width:  w,
		Height: h,
		HotX:   g.HotX,
		HotY:   g.HotY,
		Pixels: g.Pixels,
	}
	c.tinted = tinted
	c.lastID = id
	c.stats.Regens++
}

// Glyph returns the currently cached shape, or nil before the first
// successful Refresh.
func (c *GlyphCache) Glyph() *Glyph {
	return c.glyph
}

// Tinted returns the tinted raster for the current shape, or nil before the
// first successful Refresh.
func (c *GlyphCache) Tinted() *image.RGBA {
	return c.tinted
}

// Stats returns a copy of the cache statistics.
func (c *GlyphCache) Stats() GlyphCacheStats {
	return c.stats
}

// Close releases the cached rasters. The cache may be refreshed again
// afterwards; Close exists so every loop exit path can drop surface memory
// deterministically.
func (c *GlyphCache) Close() {
	c.glyph = nil
	c.tinted = nil
	c.lastID = 0
}
