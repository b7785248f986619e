package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/archtoys/archtoys-tools/internal/color"
)

// swatchWidth is the width of the colored preview block in cells.
const swatchWidth = 6

// Render formats the picked color for terminal output. An unknown format
// falls back to printing every representation alongside the shade ramp.
func Render(value color.RGB, format string) string {
	if text, ok := formatValue(value, format); ok && format != "all" && format != "" {
		return text + "\n"
	}

	var builder strings.Builder

	labelStyle := lipgloss.NewStyle().Bold(true).Width(5)

	builder.WriteString(swatch(value))
	builder.WriteString(" ")
	builder.WriteString(value.Hex())
	builder.WriteString("\n")

	for _, field := range []color.Field{color.FieldRGB, color.FieldHSL, color.FieldHSV} {
		builder.WriteString(labelStyle.Render(field.String() + ":"))
		builder.WriteString(" ")
		builder.WriteString(value.Format(field))
		builder.WriteString("\n")
	}

	builder.WriteString("\nshades: ")

	for _, shade := range value.Shades() {
		builder.WriteString(swatch(shade))
		builder.WriteString(" ")
	}

	builder.WriteString("\n")

	return builder.String()
}

// swatch renders a solid block in the given color.
func swatch(value color.RGB) string {
	style := lipgloss.NewStyle().Background(lipgloss.Color(value.Hex()))

	return style.Render(strings.Repeat(" ", swatchWidth))
}
