package cursorblur

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/obieFM/CursorBlur/surface"
)

// Pacing bounds. Misreported or absent display info must not produce a
// pathological tick interval.
const (
	minPaceHz      = 30.0
	maxPaceHz      = 240.0
	baselinePaceHz = 60.0
)

// PaceInterval derives the fixed tick interval from the attached displays:
// round(1000 / clamp(maxHz, 30, 240)) milliseconds, where maxHz is the
// fastest observed refresh rate (baseline 60 when nothing is reported).
func PaceInterval(rates []float64) time.Duration {
	maxHz := baselinePaceHz
	for _, hz := range rates {
		if hz > maxHz {
			maxHz = hz
		}
	}
	ms := math.Round(1000 / clampFloat(maxHz, minPaceHz, maxPaceHz))
	return time.Duration(ms) * time.Millisecond
}

// Capabilities collects the external collaborators the loop drives.
// Cursor, Displays, and Presenter are required. Clock defaults to the
// system clock; NewSurface defaults to the registry's best backend.
type Capabilities struct {
	Cursor     CursorSource
	Displays   DisplayTopology
	Presenter  Presenter
	Clock      Clock
	NewSurface surface.Factory
}

// ErrMissingCapability is returned by NewLoop when a required collaborator
// is absent.
var ErrMissingCapability = errors.New("cursorblur: missing capability")

// Loop owns the per-tick sample -> composite -> present cycle and every
// drawing surface in it. One goroutine runs the whole sequence; the only
// suspension point is the pacing wait between ticks.
type Loop struct {
	cfg  *Config
	caps Capabilities

	trail  *Trail
	glyphs *GlyphCache
	comp   *Compositor

	back    surface.Surface
	scratch surface.Surface

	viewport image.Rectangle
	interval time.Duration
}

// NewLoop allocates the backbuffer and scratch surface for the current
// virtual screen and prepares the loop. A surface allocation failure here
// is fatal; whatever was acquired is released before returning.
func NewLoop(cfg *Config, caps Capabilities) (*Loop, error) {
	if caps.Cursor == nil || caps.Displays == nil || caps.Presenter == nil {
		return nil, ErrMissingCapability
	}
	if caps.Clock == nil {
		caps.Clock = SystemClock()
	}
	if caps.NewSurface == nil {
		caps.NewSurface = surface.New
	}

	viewport := caps.Displays.VirtualScreen()

	back, err := caps.NewSurface(viewport.Dx(), viewport.Dy())
	if err != nil {
		return nil, fmt.Errorf("cursorblur: backbuffer: %w", err)
	}
	scratch, err := caps.NewSurface(1, 1)
	if err != nil {
		back.Close()
		return nil, fmt.Errorf("cursorblur: scratch surface: %w", err)
	}

	return &Loop{
		cfg:      cfg,
		caps:     caps,
		trail:    NewTrail(cfg.MaxTrail, cfg.RetentionLimit()),
		glyphs:   NewGlyphCache(cfg.Tint),
		comp:     NewCompositor(cfg),
		back:     back,
		scratch:  scratch,
		viewport: viewport,
		interval: PaceInterval(caps.Displays.RefreshRates()),
	}, nil
}

// Interval returns the pacing interval derived at construction.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Trail exposes the trail for inspection. The loop remains the only
// writer.
func (l *Loop) Trail() *Trail {
	return l.trail
}

// Run drives the tick cycle until ctx is cancelled or a fatal resource
// failure occurs. Cancellation returns nil; only unrecoverable surface
// failures return an error.
func (l *Loop) Run(ctx context.Context) error {
	clock := l.caps.Clock
	last := clock.Now()

	for {
		clock.SleepUntil(ctx, last.Add(l.interval))
		if ctx.Err() != nil {
			return nil
		}
		last = clock.Now()

		if err := l.tick(last); err != nil {
			return err
		}
	}
}

// tick runs one sample -> composite -> present cycle at instant now.
func (l *Loop) tick(now time.Time) error {
	state, sampleErr := l.caps.Cursor.Sample()
	if sampleErr == nil {
		l.trail.Update(state.Pos, now)
	}

	// Display drift: a monitor attach/detach or resolution change flips
	// the virtual screen; the backbuffer follows with a grow-only resize.
	if vs := l.caps.Displays.VirtualScreen(); vs != l.viewport {
		l.viewport = vs
		if err := l.back.Resize(vs.Dx(), vs.Dy()); err != nil {
			return fmt.Errorf("cursorblur: backbuffer resize: %w", err)
		}
	}

	if sampleErr != nil || !state.Visible {
		// Hidden cursor: keep aging the trail so it fades out, but skip
		// presentation entirely once nothing is left to draw.
		l.trail.Expire(now)
		if l.trail.Len() == 0 {
			return nil
		}
	} else {
		l.glyphs.Refresh(state.Glyph, l.caps.Cursor)
	}

	err := l.comp.Render(l.trail, l.glyphs.Glyph(), l.glyphs.Tinted(),
		l.back, l.scratch, l.viewport, now)
	if err != nil {
		// Recoverable: skip this frame, the next tick retries naturally.
		return nil
	}

	if frame := l.back.Image(); frame != nil {
		// Presentation failures are likewise per-frame recoverable.
		_ = l.caps.Presenter.Present(frame, l.viewport.Min)
	}
	return nil
}

// Close releases every surface the loop owns. Safe on every exit path and
// idempotent.
func (l *Loop) Close() error {
	var first error
	if l.back != nil {
		if err := l.back.Close(); err != nil && first == nil {
			first = err
		}
	}
	if l.scratch != nil {
		if err := l.scratch.Close(); err != nil && first == nil {
			first = err
		}
	}
	l.glyphs.Close()
	return first
}
