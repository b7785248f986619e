package color

import (
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses "#RRGGBB" or "RRGGBB". Exactly six hex digits are required,
// case-insensitively; shorthand forms are rejected.
func ParseHex(value string) (RGB, bool) {
	clean := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(clean) != 6 {
		return RGB{}, false
	}

	parsed, err := strconv.ParseUint(clean, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	return RGB{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
	}, true
}

// ParseRGB parses "r,g,b" or "rgb(r,g,b)". Components are clamped to 0..255.
func ParseRGB(value string) (RGB, bool) {
	parts := splitPayload(value, "rgb")
	if parts == nil {
		return RGB{}, false
	}

	var channels [3]uint8

	for i, part := range parts {
		raw, err := strconv.Atoi(part)
		if err != nil {
			return RGB{}, false
		}

		channels[i] = clampChannel(raw)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// ParseHSL parses "h,s%,l%" or "hsl(h,s%,l%)". The hue wraps into [0,360),
// percent signs are optional, and saturation/lightness clamp to 0..100%.
func ParseHSL(value string) (RGB, bool) {
	parts := splitPayload(value, "hsl")
	if parts == nil {
		return RGB{}, false
	}

	h, s, l, ok := parseHueAndPercents(parts)
	if !ok {
		return RGB{}, false
	}

	return fromColorful(colorful.Hsl(h, s, l)), true
}

// ParseHSV parses "h,s%,v%" or "hsv(h,s%,v%)" with the same tolerance as ParseHSL.
func ParseHSV(value string) (RGB, bool) {
	parts := splitPayload(value, "hsv")
	if parts == nil {
		return RGB{}, false
	}

	h, s, v, ok := parseHueAndPercents(parts)
	if !ok {
		return RGB{}, false
	}

	return fromColorful(colorful.Hsv(h, s, v)), true
}

// Parse dispatches to the field-specific parser.
func Parse(field Field, value string) (RGB, bool) {
	switch field {
	case FieldHex:
		return ParseHex(value)
	case FieldRGB:
		return ParseRGB(value)
	case FieldHSL:
		return ParseHSL(value)
	case FieldHSV:
		return ParseHSV(value)
	default:
		return RGB{}, false
	}
}

// splitPayload strips an optional case-insensitive "fn(...)" wrapper and
// splits the payload into exactly three trimmed components.
func splitPayload(value, funcName string) []string {
	trimmed := strings.TrimSpace(value)
	prefix := funcName + "("

	if strings.HasPrefix(strings.ToLower(trimmed), prefix) &&
		strings.HasSuffix(trimmed, ")") &&
		len(trimmed) > len(prefix) {
		trimmed = strings.TrimSpace(trimmed[len(prefix) : len(trimmed)-1])
	}

	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return nil
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// parseHueAndPercents parses a hue in degrees plus two percentages in [0,1].
func parseHueAndPercents(parts []string) (h, p1, p2 float64, ok bool) {
	rawHue, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, 0, false
	}

	h = math.Mod(math.Mod(rawHue, 360)+360, 360)

	p1, ok = parsePercent(parts[1])
	if !ok {
		return 0, 0, 0, false
	}

	p2, ok = parsePercent(parts[2])
	if !ok {
		return 0, 0, 0, false
	}

	return h, p1, p2, true
}

// parsePercent parses "42%" or "42" into 0.42, clamped into [0,1].
func parsePercent(value string) (float64, bool) {
	raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "%"))

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return clamp01(parsed / 100.0), true
}

// clampChannel clamps an integer into the byte range.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}

	if v > 255 {
		return 255
	}

	return uint8(v)
}
