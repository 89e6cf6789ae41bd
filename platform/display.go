package platform

import (
	"image"

	"github.com/kbinani/screenshot"
)

// DesktopDisplays reads display geometry through kbinani/screenshot.
//
// The virtual screen is recomputed on every query; the loop compares the
// result per tick to detect monitor attach/detach and resolution changes,
// which keeps the eventually-consistent-within-one-tick contract without a
// notification channel.
type DesktopDisplays struct {
	rates []float64
}

// NewDesktopDisplays creates a display topology source. The portable
// screenshot API does not expose refresh rates, so known rates can be
// passed in (e.g. from OS-specific probing or configuration); with none
// given the scheduler falls back to its 60 Hz baseline.
func NewDesktopDisplays(rates ...float64) *DesktopDisplays {
	return &DesktopDisplays{rates: rates}
}

// VirtualScreen returns the union of all active display bounds.
func (d *DesktopDisplays) VirtualScreen() image.Rectangle {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return image.Rect(0, 0, 1, 1)
	}

	vs := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		vs = vs.Union(screenshot.GetDisplayBounds(i))
	}
	return vs
}

// RefreshRates returns the configured refresh rates, if any.
func (d *DesktopDisplays) RefreshRates() []float64 {
	return d.rates
}
