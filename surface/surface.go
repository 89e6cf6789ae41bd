package surface

import (
	"errors"
	"image"
)

// ErrClosed is returned when a closed surface is used.
var ErrClosed = errors.New("surface: closed")

// ErrTooLarge is returned when a requested size exceeds the backend's
// allocation bound. Loops treat this as a fatal resource failure.
var ErrTooLarge = errors.New("surface: requested size exceeds allocation bound")

// Surface is a mutable off-screen pixel target with grow-only capacity.
//
// Width and Height report the logical size, which may be smaller than the
// backing allocation after a shrinking Resize. Drawing operations address
// the logical region only.
//
// Surfaces are NOT thread-safe.
type Surface interface {
	// Width returns the logical width in pixels.
	Width() int

	// Height returns the logical height in pixels.
	Height() int

	// Resize sets the logical size. Capacity only grows: when the request
	// fits the current allocation this is a logical resize with no pixel
	// work beyond clearing; otherwise the backing store is reallocated.
	Resize(width, height int) error

	// Clear resets the logical region to transparent black. Every frame is
	// drawn from scratch; nothing accumulates across frames.
	Clear()

	// Stamp composites src (premultiplied RGBA) source-over onto the
	// surface at the given offset, modulated by the scalar opacity.
	// The stamp is clipped against the logical bounds.
	Stamp(src *image.RGBA, at image.Point, opacity uint8)

	// Image returns the logical region as an *image.RGBA view sharing the
	// backing store. The view is valid until the next Resize or Close.
	Image() *image.RGBA

	// Close releases the backing store. Close is idempotent; after Close
	// the surface must not be used.
	Close() error
}
