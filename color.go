package cursorblur

// Tint is a multiplicative color applied to the cursor glyph before
// blending. Each channel of the glyph raster is scaled by the matching
// tint channel: c' = c * tint / 255. Alpha is never touched.
type Tint struct {
	R, G, B uint8
}

// White is the identity tint; it leaves the glyph unchanged.
var White = Tint{R: 255, G: 255, B: 255}

// ParseTint creates a Tint from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional "#" prefix.
// Returns the identity tint and false if the string is malformed.
func ParseTint(hex string) (Tint, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return White, false
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return White, false
		}
	default:
		return White, false
	}

	return Tint{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Apply scales a single channel value by the given tint channel.
func applyTint(c, tint uint8) uint8 {
	return uint8((uint32(c) * uint32(tint)) / 255)
}
