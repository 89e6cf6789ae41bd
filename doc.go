// Package cursorblur renders a fading motion trail behind the screen cursor.
//
// # Overview
//
// The library maintains a time-ordered history of cursor positions (the
// Trail), caches a tinted raster of the current cursor glyph, and each frame
// composites the glyph repeatedly along the interpolated path into a
// full-desktop backbuffer. The finished frame is handed to a Presenter as one
// atomic update.
//
// # Quick Start
//
//	cfg := cursorblur.DefaultConfig()
//	cfg.ParseTokens(os.Args[1:])
//
//	loop, err := cursorblur.NewLoop(cfg, cursorblur.Capabilities{
//		Cursor:    platform.NewDesktopCursor(),
//		Displays:  platform.NewDesktopDisplays(),
//		Presenter: presenter,
//	})
//	if err != nil {
//		// fatal resource failure
//	}
//	defer loop.Close()
//	loop.Run(ctx)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Trail, GlyphCache, Compositor, Loop, Config
//   - surface: resizable off-screen RGBA surfaces with grow-only capacity
//   - platform: capability implementations (cursor sampling, display
//     topology, frame presentation)
//   - Internal: blend (premultiplied source-over stamping)
//
// # Concurrency
//
// One goroutine owns sampling, compositing, and presentation in strict
// sequence per tick. The only suspension point is the pacing wait between
// ticks. Cancellation is external via context.Context.
//
// # Coordinate System
//
// Positions are virtual-screen coordinates: the bounding rectangle of all
// attached displays, which may have a negative origin in multi-monitor
// setups. The backbuffer is addressed relative to the virtual-screen origin.
package cursorblur

// Version information
const (
	// Version is the current version of the library
	Version = "1.0.0"
)
