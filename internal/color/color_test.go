package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCanonicalFormats checks the four renderings against known samples.
func TestCanonicalFormats(t *testing.T) {
	t.Parallel()

	// The default preview color of the application.
	c := RGB{R: 203, G: 182, B: 172}
	require.Equal(t, "#CBB6AC", c.Hex())
	require.Equal(t, "rgb(203,182,172)", c.RGBString())

	red := RGB{R: 255}
	require.Equal(t, "hsl(0,100%,50%)", red.HSLString())
	require.Equal(t, "hsv(0,100%,100%)", red.HSVString())

	grey := RGB{R: 85, G: 85, B: 85}
	require.Equal(t, "hsl(0,0%,33%)", grey.HSLString())

	white := RGB{R: 255, G: 255, B: 255}
	require.Equal(t, "hsl(0,0%,100%)", white.HSLString())
	require.Equal(t, "hsv(0,0%,100%)", white.HSVString())
}

// TestFormatDispatch ensures Format selects the matching rendering.
func TestFormatDispatch(t *testing.T) {
	t.Parallel()

	c := RGB{R: 255}
	require.Equal(t, c.Hex(), c.Format(FieldHex))
	require.Equal(t, c.RGBString(), c.Format(FieldRGB))
	require.Equal(t, c.HSLString(), c.Format(FieldHSL))
	require.Equal(t, c.HSVString(), c.Format(FieldHSV))
}

// TestFieldFromLabel maps UI labels to fields and rejects unknown ones.
func TestFieldFromLabel(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"HEX", "RGB", "HSL", "HSV"} {
		field, ok := FieldFromLabel(label)
		require.True(t, ok)
		require.Equal(t, label, field.String())
	}

	_, ok := FieldFromLabel("CMYK")
	require.False(t, ok)
}

// TestShades verifies the preview ladder factors, clamping included.
func TestShades(t *testing.T) {
	t.Parallel()

	shades := RGB{R: 100, G: 100, B: 100}.Shades()
	require.Equal(t, RGB{R: 150, G: 150, B: 150}, shades[0])
	require.Equal(t, RGB{R: 120, G: 120, B: 120}, shades[1])
	require.Equal(t, RGB{R: 70, G: 70, B: 70}, shades[2])
	require.Equal(t, RGB{R: 50, G: 50, B: 50}, shades[3])

	// Bright channels saturate instead of wrapping.
	bright := RGB{R: 200, G: 250, B: 255}.Shade(ShadeLighter2)
	require.Equal(t, RGB{R: 255, G: 255, B: 255}, bright)
}
