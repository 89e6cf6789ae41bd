package cursorblur

import (
	"image"
	"time"
)

// Sample is one (position, timestamp) observation of the cursor.
// Samples are immutable once created.
type Sample struct {
	Pos image.Point
	At  time.Time
}

// Age returns the sample's age at the given instant.
func (s Sample) Age(now time.Time) time.Duration {
	return now.Sub(s.At)
}

// Trail is an ordered, bounded history of timestamped cursor positions,
// oldest first. Insertion order is chronological order and no operation
// reorders samples.
//
// Trail is NOT thread-safe. It is owned by the main loop: single writer,
// single reader, same goroutine.
type Trail struct {
	samples []Sample
	max     int
	maxAge  time.Duration
}

// NewTrail creates an empty trail. maxSize bounds the number of retained
// samples; maxAge is the retention limit (fade duration plus slack) beyond
// which samples are evicted from the front.
func NewTrail(maxSize int, maxAge time.Duration) *Trail {
	if maxSize <= 0 {
		maxSize = MaxTrailSize
	}
	return &Trail{
		samples: make([]Sample, 0, maxSize),
		max:     maxSize,
		maxAge:  maxAge,
	}
}

// Update appends a new sample for pos if the cursor has moved at least one
// pixel since the last appended sample (squared-distance test), evicting
// from the front when the size bound is exceeded. Independently of the
// append it expires samples older than the retention limit.
func (t *Trail) Update(pos image.Point, now time.Time) {
	add := len(t.samples) == 0
	if !add {
		last := t.samples[len(t.samples)-1].Pos
		dx := pos.X - last.X
		dy := pos.Y - last.Y
		add = dx*dx+dy*dy >= 1
	}

	if add {
		t.samples = append(t.samples, Sample{Pos: pos, At: now})
		if len(t.samples) > t.max {
			t.popFront(len(t.samples) - t.max)
		}
	}

	t.Expire(now)
}

// Expire evicts from the front every sample older than the retention limit.
// The scheduler calls this on ticks where the cursor is hidden, so a
// fading-out trail keeps shrinking without new samples arriving.
func (t *Trail) Expire(now time.Time) {
	n := 0
	for n < len(t.samples) && now.Sub(t.samples[n].At) > t.maxAge {
		n++
	}
	if n > 0 {
		t.popFront(n)
	}
}

// Len returns the number of retained samples.
func (t *Trail) Len() int {
	return len(t.samples)
}

// At returns the i-th sample, oldest first.
func (t *Trail) At(i int) Sample {
	return t.samples[i]
}

// Newest returns the most recent sample. It panics if the trail is empty.
func (t *Trail) Newest() Sample {
	return t.samples[len(t.samples)-1]
}

// Reset drops every sample without releasing capacity.
func (t *Trail) Reset() {
	t.samples = t.samples[:0]
}

// popFront drops the n oldest samples, keeping the backing array so the
// trail never reallocates in steady state.
func (t *Trail) popFront(n int) {
	m := copy(t.samples, t.samples[n:])
	t.samples = t.samples[:m]
}
