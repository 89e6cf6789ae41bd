package surface

import (
	"image"

	"github.com/obieFM/CursorBlur/internal/blend"
)

// maxPixels bounds a single allocation (64 megapixels, 256 MiB of RGBA).
// Requests beyond it are reported as allocation failures rather than
// attempted; a misreported display geometry should not take the process
// down with it.
const maxPixels = 64 << 20

// ImageSurface is the CPU surface backed by an *image.RGBA.
//
// The backing image is allocated at capacity size; the logical size is
// tracked separately and exposed through Image as a sub-image view.
type ImageSurface struct {
	width  int
	height int

	capW int
	capH int

	img *image.RGBA

	closed bool
}

// NewImageSurface creates a CPU surface with the given logical size.
// Dimensions below 1 are clamped to 1.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	s := &ImageSurface{}
	if err := s.Resize(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// Width returns the logical width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the logical height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Capacity returns the allocated dimensions, which may exceed the logical
// size after a shrinking Resize.
func (s *ImageSurface) Capacity() (int, int) {
	return s.capW, s.capH
}

// Resize sets the logical size with grow-only capacity.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	if width <= s.capW && height <= s.capH && s.img != nil {
		s.width = width
		s.height = height
		return nil
	}

	if width*height > maxPixels {
		return ErrTooLarge
	}

	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.width = width
	s.height = height
	s.capW = width
	s.capH = height
	return nil
}

// Clear resets the logical region to transparent black.
func (s *ImageSurface) Clear() {
	if s.closed {
		return
	}
	blend.Clear(s.img, image.Rect(0, 0, s.width, s.height))
}

// Stamp composites src source-over onto the logical region.
func (s *ImageSurface) Stamp(src *image.RGBA, at image.Point, opacity uint8) {
	if s.closed {
		return
	}
	blend.SourceOver(s.Image(), src, at, opacity)
}

// Image returns the logical region as a view sharing the backing store.
func (s *ImageSurface) Image() *image.RGBA {
	if s.closed || s.img == nil {
		return nil
	}
	if s.width == s.capW && s.height == s.capH {
		return s.img
	}
	return s.img.SubImage(image.Rect(0, 0, s.width, s.height)).(*image.RGBA)
}

// Close releases the backing store. Idempotent.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.width = 0
	s.height = 0
	s.capW = 0
	s.capH = 0
	return nil
}

func init() {
	Register("image", 10, func(width, height int) (Surface, error) {
		return NewImageSurface(width, height)
	}, nil)
}
