package cursorblur

import "image"

// DefaultGlyphSize is the fallback edge length used when the platform
// reports a zero-sized cursor glyph. Malformed cursor resources exist in
// the wild; a 32x32 default keeps the trail drawable.
const DefaultGlyphSize = 32

// GlyphID is the opaque identity of a system cursor shape. A change of
// identity invalidates every raster derived from the previous shape.
type GlyphID uint64

// Glyph is the rasterized image of one system cursor shape.
//
// Pixels contains alpha-premultiplied RGBA data (the image.RGBA convention),
// so the per-pixel alpha channel of the raster participates directly in
// source-over blending. Hotspot is the offset of the logical click point
// from the glyph's top-left corner.
type Glyph struct {
	ID     GlyphID
	Width  int
	Height int
	HotX   int
	HotY   int
	Pixels *image.RGBA
}

// Bounds returns the glyph's pixel bounds.
func (g *Glyph) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// Hotspot returns the hotspot offset as a point.
func (g *Glyph) Hotspot() image.Point {
	return image.Pt(g.HotX, g.HotY)
}

// GlyphProvider rasterizes the system cursor shape with the given identity.
// Rasterization is O(width*height) and the cache calls it at most once per
// shape change, never per frame.
type GlyphProvider interface {
	// Glyph returns the raster for the given cursor identity.
	// An error means glyph introspection failed; callers degrade by
	// reusing the previously cached shape.
	Glyph(id GlyphID) (*Glyph, error)
}
