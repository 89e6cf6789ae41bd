package blend

import (
	"image"
	"testing"
)

func solid(w, h int, r, g, b, a uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// TestSourceOverOpaque tests a full-opacity stamp onto transparent black.
func TestSourceOverOpaque(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	src := solid(4, 4, 255, 255, 255, 255)

	SourceOver(dst, src, image.Pt(2, 2), 255)

	c := dst.RGBAAt(3, 3)
	if c.R != 255 || c.G != 255 || c.B != 255 || c.A != 255 {
		t.Errorf("pixel = %v, want opaque white", c)
	}
	if out := dst.RGBAAt(0, 0); out.A != 0 {
		t.Errorf("pixel outside stamp = %v, want untouched", out)
	}
}

// TestSourceOverScalarModulation tests the two-stage alpha: source pixels
// are scaled by opacity/255 before compositing.
func TestSourceOverScalarModulation(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src := solid(4, 4, 255, 255, 255, 255)

	SourceOver(dst, src, image.Point{}, 128)

	c := dst.RGBAAt(1, 1)
	if c.A != 128 {
		t.Errorf("alpha = %d, want 128", c.A)
	}
	if c.R != 128 {
		t.Errorf("red = %d, want 128 (premultiplied)", c.R)
	}
}

// TestSourceOverAccumulates tests repeated stamps building up coverage,
// the way overlapping trail segments do.
func TestSourceOverAccumulates(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src := solid(4, 4, 255, 255, 255, 255)

	SourceOver(dst, src, image.Point{}, 64)
	first := dst.RGBAAt(1, 1).A
	SourceOver(dst, src, image.Point{}, 64)
	second := dst.RGBAAt(1, 1).A

	if second <= first {
		t.Errorf("alpha did not accumulate: %d then %d", first, second)
	}
	if second > 255 {
		t.Errorf("alpha overflowed: %d", second)
	}
}

// TestSourceOverZeroOpacity tests the early-out.
func TestSourceOverZeroOpacity(t *testing.T) {
	dst := solid(4, 4, 10, 20, 30, 40)
	src := solid(4, 4, 255, 255, 255, 255)

	SourceOver(dst, src, image.Point{}, 0)

	if c := dst.RGBAAt(0, 0); c.R != 10 || c.A != 40 {
		t.Errorf("pixel = %v, want destination untouched", c)
	}
}

// TestSourceOverClipping tests stamps partially and fully outside the
// destination.
func TestSourceOverClipping(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	src := solid(4, 4, 255, 255, 255, 255)

	SourceOver(dst, src, image.Pt(-2, -2), 255) // top-left overlap
	SourceOver(dst, src, image.Pt(6, 6), 255)   // bottom-right overlap
	SourceOver(dst, src, image.Pt(50, 50), 255) // fully outside

	if dst.RGBAAt(0, 0).A != 255 {
		t.Error("top-left overlap not written")
	}
	if dst.RGBAAt(7, 7).A != 255 {
		t.Error("bottom-right overlap not written")
	}
	if dst.RGBAAt(4, 4).A != 0 {
		t.Error("center written by clipped stamps")
	}
}

// TestSourceOverSubImageSource tests a source whose bounds do not start
// at the origin.
func TestSourceOverSubImageSource(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 8, 8))
	// Mark one pixel inside the region we will cut out.
	i := base.PixOffset(5, 5)
	base.Pix[i+0] = 255
	base.Pix[i+3] = 255
	src := base.SubImage(image.Rect(4, 4, 8, 8)).(*image.RGBA)

	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	SourceOver(dst, src, image.Point{}, 255)

	if dst.RGBAAt(1, 1).A != 255 {
		t.Error("sub-image source pixel not composited at the right offset")
	}
}

// TestClear tests zeroing a region.
func TestClear(t *testing.T) {
	dst := solid(8, 8, 255, 255, 255, 255)
	Clear(dst, image.Rect(2, 2, 6, 6))

	if dst.RGBAAt(3, 3).A != 0 {
		t.Error("cleared region not zeroed")
	}
	if dst.RGBAAt(0, 0).A != 255 {
		t.Error("pixel outside region was cleared")
	}

	// Degenerate and out-of-range rects are safe.
	Clear(dst, image.Rect(100, 100, 200, 200))
	Clear(dst, image.Rectangle{})
}

// TestMulDiv255 tests the fast division approximation at the endpoints,
// where exactness matters for fully opaque and fully transparent pixels.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{255, 128, 128},
		{128, 255, 128},
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
