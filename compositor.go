package cursorblur

import (
	"image"
	"math"
	"time"

	"github.com/obieFM/CursorBlur/surface"
)

// minStampAlpha is the imperceptible-alpha culling threshold. Stamps whose
// computed opacity lands below it are skipped; at peak opacity 10 most of a
// slow trail culls away, which is the intended look.
const minStampAlpha = 3

// fadeEndWeight shifts segment fade slightly toward the newer end of each
// segment (age0 + age0*t*0.1). A tuning constant of the reference behavior;
// it is not derived from a physical model.
const fadeEndWeight = 0.1

// Compositor renders a trail into a backbuffer by stamping the tinted
// cursor glyph along the interpolated path.
//
// Compositor holds no per-frame state; it reads the immutable Config and
// writes only into the surfaces passed to Render.
type Compositor struct {
	cfg *Config
}

// NewCompositor creates a compositor for the given configuration.
func NewCompositor(cfg *Config) *Compositor {
	return &Compositor{cfg: cfg}
}

// Render composites the full frame into back.
//
// The backbuffer is cleared to transparent first: every frame is drawn from
// scratch from the current trail state, so fades are exact functions of the
// current time rather than drift-prone accumulation. The tinted glyph is
// copied once into scratch and then stamped once per interpolated sub-point.
//
// Adjacent sample pairs are traversed newest to oldest, and within each
// pair from t=1 down to t=0. Trails that overlap themselves rely on this
// back-to-front order: newer, more opaque segments are laid down first and
// must not be occluded by older, fainter ones.
//
// A non-nil error means the frame was skipped (recoverable); the next tick
// retries naturally.
func (c *Compositor) Render(trail *Trail, glyph *Glyph, tinted *image.RGBA,
	back, scratch surface.Surface, viewport image.Rectangle, now time.Time) error {

	if glyph == nil || tinted == nil {
		back.Clear()
		return nil
	}

	if err := scratch.Resize(glyph.Width, glyph.Height); err != nil {
		return err
	}
	scratch.Clear()
	scratch.Stamp(tinted, image.Point{}, 255)
	stamp := scratch.Image()

	back.Clear()

	origin := viewport.Min
	hot := glyph.Hotspot()
	fadeMs := c.cfg.FadeMs

	for i := trail.Len() - 2; i >= 0; i-- {
		s0 := trail.At(i)
		s1 := trail.At(i + 1)

		age0 := float64(s0.Age(now).Milliseconds())
		if age0 > fadeMs {
			continue
		}

		p0 := FromImagePoint(s0.Pos)
		p1 := FromImagePoint(s1.Pos)
		if p1.Sub(p0).LengthSquared() < 1 {
			continue
		}

		dist := p0.Distance(p1)
		steps := int(math.Ceil(dist))
		stepFrac := 1 / float64(steps)

		// Interpolate between samples to fill gaps: one stamp per pixel
		// of travel, so no cursor speed leaves visible holes.
		for j := steps; j >= 0; j-- {
			t := float64(j) * stepFrac

			a := c.stampAlpha(age0, t, dist)
			if a < minStampAlpha {
				continue
			}

			at := p0.Lerp(p1, t).Round().Sub(origin).Sub(hot)
			back.Stamp(stamp, at, a)
		}
	}

	return nil
}

// stampAlpha computes the scalar opacity for one interpolated sub-point.
//
// fade weights age toward the far end of the segment; speedFactor lets fast
// motion compensate for the fewer samples it produces per unit time, so
// fast trails stay visible.
func (c *Compositor) stampAlpha(age0, t, dist float64) uint8 {
	fade := 1 - (age0+age0*t*fadeEndWeight)/c.cfg.FadeMs
	if fade < 0 {
		fade = 0
	}

	speedFactor := clampFloat(dist*c.cfg.Sensitivity, 0, 1)

	return uint8(clampFloat(float64(c.cfg.MaxAlpha)*fade*speedFactor, 0, 255))
}
