// Package blend implements the source-over compositing used to stamp the
// tinted cursor glyph along the trail.
//
// All operations work with alpha-premultiplied values in the range 0-255
// (the image.RGBA convention). The stamp is two-stage alpha: the glyph's
// own per-pixel alpha multiplied by a computed scalar opacity, then
// composited source-over onto the destination.
package blend

import "image"

// div255 divides x by 255 using fast shift approximation.
//
// Formula: (x + 255) >> 8
//
// This is ~5x faster than integer division. The maximum error is +1 for
// some input values, which is imperceptible in alpha blending.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 using fast approximation.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// addClamp255 adds two bytes, saturating at 255. The fast div255
// approximation can overshoot by one, so the sum is clamped rather than
// trusted to stay in range.
func addClamp255(a, b byte) byte {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return byte(s)
}

// SourceOver composites src over dst at the given destination offset,
// modulating the source by the scalar opacity. src must be premultiplied;
// each source pixel is scaled by opacity/255 before the standard
// S + D*(1-Sa) source-over, matching a constant-alpha AlphaBlend.
//
// The stamp is clipped against dst's bounds; offsets partially or fully
// outside the destination are safe.
func SourceOver(dst *image.RGBA, src *image.RGBA, at image.Point, opacity uint8) {
	if opacity == 0 {
		return
	}

	sb := src.Bounds()
	db := dst.Bounds()

	// Destination rect of the stamp, clipped to dst.
	dr := image.Rectangle{Min: at, Max: at.Add(sb.Size())}.Intersect(db)
	if dr.Empty() {
		return
	}

	// Source origin after clipping.
	so := sb.Min.Add(dr.Min.Sub(at))

	for y := 0; y < dr.Dy(); y++ {
		si := src.PixOffset(so.X, so.Y+y)
		di := dst.PixOffset(dr.Min.X, dr.Min.Y+y)
		for x := 0; x < dr.Dx(); x++ {
			sr := mulDiv255(src.Pix[si+0], opacity)
			sg := mulDiv255(src.Pix[si+1], opacity)
			sbv := mulDiv255(src.Pix[si+2], opacity)
			sa := mulDiv255(src.Pix[si+3], opacity)

			if sa != 0 || sr != 0 || sg != 0 || sbv != 0 {
				invSa := 255 - sa
				dst.Pix[di+0] = addClamp255(sr, mulDiv255(dst.Pix[di+0], invSa))
				dst.Pix[di+1] = addClamp255(sg, mulDiv255(dst.Pix[di+1], invSa))
				dst.Pix[di+2] = addClamp255(sbv, mulDiv255(dst.Pix[di+2], invSa))
				dst.Pix[di+3] = addClamp255(sa, mulDiv255(dst.Pix[di+3], invSa))
			}

			si += 4
			di += 4
		}
	}
}

// Clear zeroes the given rect of dst to transparent black.
func Clear(dst *image.RGBA, r image.Rectangle) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		row := dst.Pix[i : i+r.Dx()*4]
		for j := range row {
			row[j] = 0
		}
	}
}
