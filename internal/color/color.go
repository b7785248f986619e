package color

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit screen color sample.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Shade factors applied per channel to derive the preview ladder.
// Fractional results are truncated, matching the shipped application.
const (
	ShadeLighter2 = 1.5
	ShadeLighter1 = 1.2
	ShadeDarker1  = 0.7
	ShadeDarker2  = 0.5
)

// Field identifies one of the canonical color renderings.
type Field int

// Canonical renderings, in UI order.
const (
	FieldHex Field = iota
	FieldRGB
	FieldHSL
	FieldHSV
)

// FieldFromLabel maps a UI label to a Field.
func FieldFromLabel(label string) (Field, bool) {
	switch label {
	case "HEX":
		return FieldHex, true
	case "RGB":
		return FieldRGB, true
	case "HSL":
		return FieldHSL, true
	case "HSV":
		return FieldHSV, true
	default:
		return 0, false
	}
}

// String returns the UI label for the field.
func (f Field) String() string {
	switch f {
	case FieldHex:
		return "HEX"
	case FieldRGB:
		return "RGB"
	case FieldHSL:
		return "HSL"
	case FieldHSV:
		return "HSV"
	default:
		return "UNKNOWN"
	}
}

// Hex renders the color as an upper-case "#RRGGBB" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBString renders the color as "rgb(r,g,b)".
func (c RGB) RGBString() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// HSLString renders the color as "hsl(h,s%,l%)" with integer components.
func (c RGB) HSLString() string {
	h, s, l := c.toColorful().Hsl()

	return fmt.Sprintf("hsl(%.0f,%.0f%%,%.0f%%)",
		normalizeHue(h),
		clampPercent(s*100),
		clampPercent(l*100))
}

// HSVString renders the color as "hsv(h,s%,v%)" with integer components.
func (c RGB) HSVString() string {
	h, s, v := c.toColorful().Hsv()

	return fmt.Sprintf("hsv(%.0f,%.0f%%,%.0f%%)",
		normalizeHue(h),
		clampPercent(s*100),
		clampPercent(v*100))
}

// Format renders the canonical representation for the requested field.
func (c RGB) Format(field Field) string {
	switch field {
	case FieldHex:
		return c.Hex()
	case FieldRGB:
		return c.RGBString()
	case FieldHSL:
		return c.HSLString()
	case FieldHSV:
		return c.HSVString()
	default:
		return c.Hex()
	}
}

// Shade multiplies every channel by factor, clamping to the byte range.
func (c RGB) Shade(factor float64) RGB {
	return RGB{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

// Shades returns the preview ladder: two lighter and two darker variants.
func (c RGB) Shades() [4]RGB {
	return [4]RGB{
		c.Shade(ShadeLighter2),
		c.Shade(ShadeLighter1),
		c.Shade(ShadeDarker1),
		c.Shade(ShadeDarker2),
	}
}

// toColorful converts the sample into a go-colorful color in [0,1] space.
func (c RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fromColorful converts a go-colorful color back into byte channels,
// clamping and rounding the way the shipped application does.
func fromColorful(c colorful.Color) RGB {
	return RGB{
		R: uint8(math.Round(clamp01(c.R) * 255.0)),
		G: uint8(math.Round(clamp01(c.G) * 255.0)),
		B: uint8(math.Round(clamp01(c.B) * 255.0)),
	}
}

// scaleChannel multiplies a channel by factor with clamping and truncation.
func scaleChannel(v uint8, factor float64) uint8 {
	scaled := float64(v) * factor
	if scaled > 255 {
		scaled = 255
	}

	if scaled < 0 {
		scaled = 0
	}

	return uint8(scaled)
}

// normalizeHue rounds the hue and wraps it into [0,360).
func normalizeHue(h float64) float64 {
	rounded := math.Round(h)

	return math.Mod(math.Mod(rounded, 360)+360, 360)
}

// clampPercent rounds and clamps a percentage into [0,100].
func clampPercent(p float64) float64 {
	rounded := math.Round(p)
	if rounded < 0 {
		return 0
	}

	if rounded > 100 {
		return 100
	}

	return rounded
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
