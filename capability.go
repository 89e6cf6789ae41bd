package cursorblur

import (
	"context"
	"image"
	"time"
)

// CursorState is one per-tick observation of the system cursor.
type CursorState struct {
	// Pos is the cursor position in virtual-screen coordinates.
	Pos image.Point

	// Visible reports whether the cursor is in the showing state. The
	// trail keeps aging while hidden so a fading-out trail finishes its
	// animation after the cursor disappears.
	Visible bool

	// Glyph is the identity of the current cursor shape.
	Glyph GlyphID
}

// CursorSource samples the system cursor. The same subsystem that reports
// the shape identity also rasterizes it, so CursorSource embeds
// GlyphProvider.
type CursorSource interface {
	GlyphProvider

	// Sample reads the current cursor state. An error degrades the tick
	// to the hidden-cursor path rather than failing the loop.
	Sample() (CursorState, error)
}

// DisplayTopology reports the attached display geometry.
type DisplayTopology interface {
	// VirtualScreen returns the bounding rectangle of all attached
	// displays. The loop compares it every tick to detect monitor
	// attach/detach and resolution changes.
	VirtualScreen() image.Rectangle

	// RefreshRates returns the refresh rate in Hz of each attached
	// display. May be empty when the platform cannot report rates; the
	// scheduler falls back to its baseline.
	RefreshRates() []float64
}

// Presenter pushes one finished frame to the screen. The call is atomic
// per frame: no partial-frame state is ever user-visible.
type Presenter interface {
	// Present composites the RGBA frame onto the screen with per-pixel
	// alpha at the given virtual-screen origin.
	Present(frame *image.RGBA, origin image.Point) error

	// Close releases the presentation target.
	Close() error
}

// Clock abstracts monotonic time for the pacing loop so tests can drive
// ticks without sleeping.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// SleepUntil blocks until the deadline or until ctx is cancelled.
	// Sleep-until semantics (not sleep-for) keep the tick cadence free of
	// cumulative drift.
	SleepUntil(ctx context.Context, deadline time.Time)
}

// systemClock is the real Clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) SleepUntil(ctx context.Context, deadline time.Time) {
	d := time.Until(deadline)
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// SystemClock returns the real monotonic clock.
func SystemClock() Clock {
	return systemClock{}
}
