package cursorblur

import "testing"

// TestParseTint tests hex tint parsing.
func TestParseTint(t *testing.T) {
	tests := []struct {
		in   string
		want Tint
		ok   bool
	}{
		{"FFFFFF", Tint{255, 255, 255}, true},
		{"#FF0000", Tint{255, 0, 0}, true},
		{"00ff80", Tint{0, 255, 128}, true},
		{"#abc", Tint{170, 187, 204}, true},
		{"f00", Tint{255, 0, 0}, true},
		{"", White, false},
		{"#", White, false},
		{"FFFF", White, false},
		{"GGGGGG", White, false},
		{"FF00ZZ", White, false},
	}

	for _, tt := range tests {
		got, ok := ParseTint(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseTint(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

// TestApplyTint tests the multiplicative channel scaling.
func TestApplyTint(t *testing.T) {
	tests := []struct {
		c, tint, want uint8
	}{
		{255, 255, 255},
		{255, 0, 0},
		{255, 128, 128},
		{128, 128, 64},
		{0, 255, 0},
	}

	for _, tt := range tests {
		if got := applyTint(tt.c, tt.tint); got != tt.want {
			t.Errorf("applyTint(%d, %d) = %d, want %d", tt.c, tt.tint, got, tt.want)
		}
	}
}
