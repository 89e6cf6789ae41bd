package cursorblur

import (
	"image"
	"testing"
	"time"
)

// TestTrailAppendsOnMovement tests the one-pixel movement gate.
func TestTrailAppendsOnMovement(t *testing.T) {
	tr := NewTrail(10, time.Hour)
	now := time.Now()

	tr.Update(image.Pt(0, 0), now)
	tr.Update(image.Pt(1, 0), now.Add(time.Millisecond))

	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
	if tr.At(0).Pos != image.Pt(0, 0) || tr.At(1).Pos != image.Pt(1, 0) {
		t.Errorf("samples out of order: %v, %v", tr.At(0).Pos, tr.At(1).Pos)
	}
}

// TestTrailStationaryCursor tests that identical repeated positions never
// append a new sample.
func TestTrailStationaryCursor(t *testing.T) {
	tr := NewTrail(10, time.Hour)
	now := time.Now()

	for i := 0; i < 50; i++ {
		tr.Update(image.Pt(100, 100), now.Add(time.Duration(i)*time.Millisecond))
	}

	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1 for stationary cursor", tr.Len())
	}
}

// TestTrailSizeBound tests capacity eviction, oldest first.
func TestTrailSizeBound(t *testing.T) {
	const max = 100
	tr := NewTrail(max, time.Hour)
	now := time.Now()

	for i := 0; i < max+50; i++ {
		tr.Update(image.Pt(i, 0), now.Add(time.Duration(i)*time.Millisecond))
	}

	if tr.Len() != max {
		t.Fatalf("Len() = %d, want %d", tr.Len(), max)
	}
	// The 50 oldest samples were evicted.
	if got := tr.At(0).Pos; got != image.Pt(50, 0) {
		t.Errorf("oldest sample at %v, want (50,0)", got)
	}
	if got := tr.Newest().Pos; got != image.Pt(max+49, 0) {
		t.Errorf("newest sample at %v, want (%d,0)", got, max+49)
	}
}

// TestTrailAgeEviction tests that samples older than the retention limit
// are absent after the next update.
func TestTrailAgeEviction(t *testing.T) {
	maxAge := 100 * time.Millisecond
	tr := NewTrail(10, maxAge)
	t0 := time.Now()

	tr.Update(image.Pt(0, 0), t0)
	tr.Update(image.Pt(5, 0), t0.Add(10*time.Millisecond))

	// First sample is now past the limit, second is not.
	tr.Update(image.Pt(10, 0), t0.Add(101*time.Millisecond))

	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
	if got := tr.At(0).Pos; got != image.Pt(5, 0) {
		t.Errorf("oldest sample at %v, want (5,0)", got)
	}
}

// TestTrailExpireWithoutAppend tests the hidden-cursor aging path: the
// trail shrinks toward empty purely via age-based eviction.
func TestTrailExpireWithoutAppend(t *testing.T) {
	maxAge := 100 * time.Millisecond
	tr := NewTrail(10, maxAge)
	t0 := time.Now()

	for i := 0; i < 5; i++ {
		tr.Update(image.Pt(i, 0), t0.Add(time.Duration(i)*10*time.Millisecond))
	}
	if tr.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", tr.Len())
	}

	tr.Expire(t0.Add(115 * time.Millisecond))
	if tr.Len() != 3 {
		t.Errorf("Len() = %d after partial expiry, want 3", tr.Len())
	}

	tr.Expire(t0.Add(time.Hour))
	if tr.Len() != 0 {
		t.Errorf("Len() = %d after full expiry, want 0", tr.Len())
	}
}

// TestTrailExactLimitRetained tests that a sample exactly at the retention
// limit is kept; eviction requires strictly older.
func TestTrailExactLimitRetained(t *testing.T) {
	maxAge := 100 * time.Millisecond
	tr := NewTrail(10, maxAge)
	t0 := time.Now()

	tr.Update(image.Pt(0, 0), t0)
	tr.Expire(t0.Add(maxAge))

	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1 at exact limit", tr.Len())
	}
}

// TestTrailReset tests Reset drops samples but keeps capacity usable.
func TestTrailReset(t *testing.T) {
	tr := NewTrail(10, time.Hour)
	now := time.Now()

	tr.Update(image.Pt(0, 0), now)
	tr.Update(image.Pt(5, 0), now)
	tr.Reset()

	if tr.Len() != 0 {
		t.Fatalf("Len() = %d after Reset, want 0", tr.Len())
	}

	tr.Update(image.Pt(1, 1), now)
	if tr.Len() != 1 {
		t.Errorf("Len() = %d after post-Reset update, want 1", tr.Len())
	}
}
