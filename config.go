package cursorblur

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// MaxTrailSize is the maximum number of samples retained in a Trail.
const MaxTrailSize = 500

// PresentationSlack is the grace window beyond the nominal fade duration
// during which an expired-looking sample is still retained, preventing
// visible truncation from frame jitter.
const PresentationSlack = 50 * time.Millisecond

// Config holds the immutable runtime configuration. It is constructed once
// at startup and passed by reference into the Compositor and GlyphCache;
// nothing mutates it after the loop starts.
type Config struct {
	// Sensitivity is the speed-to-alpha compensation factor. Faster cursor
	// motion partially compensates for segment-level fade. Range [0.001, 1].
	Sensitivity float64

	// FadeMs is the nominal fade duration in milliseconds. Range [1, 1000].
	FadeMs float64

	// MaxAlpha is the peak trail opacity. Range [1, 255].
	MaxAlpha uint8

	// Tint is the multiplicative color applied to the glyph.
	Tint Tint

	// MaxTrail bounds the number of retained samples.
	MaxTrail int
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Sensitivity: 0.03,
		FadeMs:      50.0,
		MaxAlpha:    10,
		Tint:        White,
		MaxTrail:    MaxTrailSize,
	}
}

// FadeDuration returns the nominal fade duration.
func (c *Config) FadeDuration() time.Duration {
	return time.Duration(c.FadeMs * float64(time.Millisecond))
}

// RetentionLimit returns the maximum age a sample may reach before the
// Trail evicts it: the fade duration plus the presentation slack.
func (c *Config) RetentionLimit() time.Duration {
	return c.FadeDuration() + PresentationSlack
}

// ParseTokens applies a whitespace-delimited launch token stream onto the
// config. Flags carry a "/" or "-" prefix and are matched case-insensitively
// by long or short name; the value is the following token.
//
// Parsing is deliberately tolerant: unrecognized tokens are ignored and
// malformed values fall back silently to the current setting. There is no
// console to report errors to.
func (c *Config) ParseTokens(tokens []string) {
	for i := 0; i < len(tokens); i++ {
		name := tokens[i]
		if name == "" {
			continue
		}
		if name[0] == '/' || name[0] == '-' {
			name = name[1:]
		}
		if i+1 >= len(tokens) {
			break
		}

		switch strings.ToLower(name) {
		case "sensitivity", "s":
			if v, err := strconv.ParseFloat(tokens[i+1], 64); err == nil {
				c.Sensitivity = clampFloat(v, 0.001, 1.0)
			}
			i++
		case "fade", "f":
			if v, err := strconv.ParseFloat(tokens[i+1], 64); err == nil {
				c.FadeMs = clampFloat(v, 1.0, 1000.0)
			}
			i++
		case "alpha", "a":
			if v, err := strconv.Atoi(tokens[i+1]); err == nil {
				c.MaxAlpha = uint8(clampInt(v, 1, 255))
			}
			i++
		case "color", "c":
			if tint, ok := ParseTint(tokens[i+1]); ok {
				c.Tint = tint
			}
			i++
		}
	}
}

// fileConfig mirrors the optional TOML config file.
type fileConfig struct {
	Trail struct {
		Sensitivity *float64 `toml:"sensitivity"`
		FadeMs      *float64 `toml:"fade_ms"`
	} `toml:"trail"`
	Render struct {
		MaxAlpha *int    `toml:"max_alpha"`
		Color    *string `toml:"color"`
	} `toml:"render"`
}

// LoadFile applies settings from a TOML config file onto the config.
// Launch tokens parsed afterwards override file values. A missing or
// malformed file is absorbed silently, consistent with token parsing.
func (c *Config) LoadFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return
	}

	if fc.Trail.Sensitivity != nil {
		c.Sensitivity = clampFloat(*fc.Trail.Sensitivity, 0.001, 1.0)
	}
	if fc.Trail.FadeMs != nil {
		c.FadeMs = clampFloat(*fc.Trail.FadeMs, 1.0, 1000.0)
	}
	if fc.Render.MaxAlpha != nil {
		c.MaxAlpha = uint8(clampInt(*fc.Render.MaxAlpha, 1, 255))
	}
	if fc.Render.Color != nil {
		if tint, ok := ParseTint(*fc.Render.Color); ok {
			c.Tint = tint
		}
	}
}

// clampFloat restricts a value to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampInt restricts a value to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
