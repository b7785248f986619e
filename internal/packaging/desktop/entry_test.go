package desktop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAutostartEntryContents pins the exact bytes the application has
// always written to the autostart directory.
func TestAutostartEntryContents(t *testing.T) {
	t.Parallel()

	want := "[Desktop Entry]\n" +
		"Type=Application\n" +
		"Name=Archtoys\n" +
		"Comment=System-wide color picker\n" +
		"Exec=archtoys --start-hidden\n" +
		"Icon=archtoys\n" +
		"Terminal=false\n" +
		"StartupWMClass=archtoys-bin\n" +
		"Categories=Graphics;Utility;\n" +
		"X-GNOME-Autostart-enabled=true\n"

	require.Equal(t, want, string(AutostartEntry().Encode()))
}

// TestEncodeParseRoundtrip ensures Parse understands everything Encode emits.
func TestEncodeParseRoundtrip(t *testing.T) {
	t.Parallel()

	original := AppEntry()

	parsed, err := Parse(original.Encode())
	require.NoError(t, err)
	require.Equal(t, original, parsed)
	require.NoError(t, parsed.Validate())
}

// TestParseRejectsHeaderless input without the standard group header.
func TestParseRejectsHeaderless(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("Type=Application\n"))
	require.Error(t, err)

	_, err = Parse([]byte(""))
	require.Error(t, err)
}

// TestValidate flags missing required fields.
func TestValidate(t *testing.T) {
	t.Parallel()

	entry := AppEntry()
	require.NoError(t, entry.Validate())

	entry.Exec = ""
	require.Error(t, entry.Validate())
}
