package platform

import (
	"image"

	"github.com/go-vgo/robotgo"

	cursorblur "github.com/obieFM/CursorBlur"
)

// builtinArrowID is the glyph identity reported by DesktopCursor. The
// portable backend cannot observe system cursor shape changes, so the
// identity is constant and the glyph cache regenerates exactly once.
const builtinArrowID cursorblur.GlyphID = 1

// DesktopCursor samples the cursor through robotgo.
//
// Position sampling is portable; visibility and shape identity are not.
// DesktopCursor reports the cursor as always showing and rasterizes the
// built-in arrow glyph. An OS-specific CursorSource that introspects the
// real cursor shape slots in behind the same interface.
type DesktopCursor struct {
	size int
}

// NewDesktopCursor creates a cursor source rasterizing the built-in arrow
// at the given edge length. Sizes below 1 use the default glyph size.
func NewDesktopCursor(size int) *DesktopCursor {
	if size < 1 {
		size = cursorblur.DefaultGlyphSize
	}
	return &DesktopCursor{size: size}
}

// Sample reads the current cursor position.
func (c *DesktopCursor) Sample() (cursorblur.CursorState, error) {
	x, y := robotgo.Location()
	return cursorblur.CursorState{
		Pos:     image.Pt(x, y),
		Visible: true,
		Glyph:   builtinArrowID,
	}, nil
}

// Glyph rasterizes the built-in arrow shape.
func (c *DesktopCursor) Glyph(id cursorblur.GlyphID) (*cursorblur.Glyph, error) {
	return BuiltinArrow(id, c.size), nil
}
