// Package surface provides resizable off-screen RGBA surfaces for the
// compositing pipeline.
//
// A Surface is a drawing target whose capacity only grows: shrinking the
// desktop or the cursor glyph performs a logical resize without touching
// the backing allocation, so steady-state frames never reallocate. The two
// surfaces the pipeline owns are the full-desktop backbuffer and a scratch
// surface tracking the current glyph bounds.
//
// # Backends
//
// ImageSurface is the CPU implementation backed by an *image.RGBA. Other
// backends can register factories by name:
//
//	surface.Register("image", 10, factory, nil)
//	s, err := surface.New(1920, 1080)
//
// The registry selects the highest-priority available backend, which keeps
// the loop code independent of how pixels are actually allocated.
//
// Surfaces are NOT thread-safe. Each surface is owned by the main loop and
// released on every exit path.
package surface
