package platform

import (
	"image"

	"golang.org/x/image/draw"

	cursorblur "github.com/obieFM/CursorBlur"
)

// arrowBase is the native raster size of the built-in arrow.
const arrowBase = 32

// BuiltinArrow rasterizes the built-in white arrow glyph at the given edge
// length, with the hotspot at the arrow tip (top-left). White pixels take
// the configured tint fully, so the trail color is exactly the tint.
//
// The arrow is drawn once at its native 32x32 size and scaled with
// nearest-neighbor resampling; cursor glyphs are hard-edged by convention
// and bilinear filtering would halo the outline.
func BuiltinArrow(id cursorblur.GlyphID, size int) *cursorblur.Glyph {
	if size < 1 {
		size = cursorblur.DefaultGlyphSize
	}

	src := rasterArrow()

	px := src
	if size != arrowBase {
		px = image.NewRGBA(image.Rect(0, 0, size, size))
		draw.NearestNeighbor.Scale(px, px.Bounds(), src, src.Bounds(), draw.Src, nil)
	}

	return &cursorblur.Glyph{
		ID:     id,
		Width:  size,
		Height: size,
		HotX:   0,
		HotY:   0,
		Pixels: px,
	}
}

// rasterArrow draws the classic pointer: a triangular head from the tip
// down the left edge, plus a short tail. Premultiplied, fully opaque white.
func rasterArrow() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, arrowBase, arrowBase))

	head := [3]image.Point{{0, 0}, {0, 21}, {15, 15}}
	tailA := [3]image.Point{{7, 13}, {12, 24}, {16, 22}}
	tailB := [3]image.Point{{7, 13}, {16, 22}, {11, 13}}

	for y := 0; y < arrowBase; y++ {
		for x := 0; x < arrowBase; x++ {
			p := image.Pt(x, y)
			if inTriangle(p, head) || inTriangle(p, tailA) || inTriangle(p, tailB) {
				i := img.PixOffset(x, y)
				img.Pix[i+0] = 255
				img.Pix[i+1] = 255
				img.Pix[i+2] = 255
				img.Pix[i+3] = 255
			}
		}
	}
	return img
}

// inTriangle reports whether p lies inside the triangle, edges included.
func inTriangle(p image.Point, t [3]image.Point) bool {
	d0 := edgeSign(p, t[0], t[1])
	d1 := edgeSign(p, t[1], t[2])
	d2 := edgeSign(p, t[2], t[0])

	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(p, a, b image.Point) int {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
