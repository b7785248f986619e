package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archtoys/archtoys-tools/internal/color"
	"github.com/archtoys/archtoys-tools/internal/hotkey"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	value := Default()
	require.False(t, value.DarkMode)
	require.False(t, value.Minimize)
	require.False(t, value.AutoCopy)
	require.False(t, value.Autostart)
	require.Equal(t, hotkey.DefaultChord, value.Hotkey)
	require.Empty(t, value.History)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	value, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), value)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir := filepath.Join(base, AppDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	// Partial file, only dark mode set. Everything else keeps defaults.
	err := os.WriteFile(filepath.Join(dir, Filename), []byte(`{"dark_mode":true}`), 0o644)
	require.NoError(t, err)

	value, err := Load()
	require.NoError(t, err)
	require.True(t, value.DarkMode)
	require.Equal(t, hotkey.DefaultChord, value.Hotkey)
	require.Empty(t, value.History)
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir := filepath.Join(base, AppDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	err := os.WriteFile(filepath.Join(dir, Filename), []byte("{nope"), 0o644)
	require.NoError(t, err)

	value, err := Load()
	require.Error(t, err)
	require.Equal(t, Default(), value)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saved := Default()
	saved.DarkMode = true
	saved.AutoCopy = true
	saved.Hotkey = "Ctrl+Alt+P"
	saved.PushHistory(color.RGB{R: 10, G: 20, B: 30})
	saved.PushHistory(color.RGB{R: 200, G: 100, B: 50})

	require.NoError(t, saved.Save())

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, saved, loaded)

	// Newest pick sits in front.
	require.Equal(t, [3]uint8{200, 100, 50}, loaded.History[0])
	require.Equal(t, [3]uint8{10, 20, 30}, loaded.History[1])
}

func TestHistorySerializesAsTriples(t *testing.T) {
	t.Parallel()

	value := Default()
	value.PushHistory(color.RGB{R: 1, G: 2, B: 3})

	data, err := json.Marshal(value)
	require.NoError(t, err)
	require.Contains(t, string(data), `"history":[[1,2,3]]`)
}

func TestHistoryColors(t *testing.T) {
	t.Parallel()

	value := Default()
	value.PushHistory(color.RGB{R: 255, G: 0, B: 128})

	colors := value.HistoryColors()
	require.Len(t, colors, 1)
	require.Equal(t, color.RGB{R: 255, G: 0, B: 128}, colors[0])
}

func TestSyncAutostart(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, SyncAutostart(true))

	data, err := os.ReadFile(AutostartPath())
	require.NoError(t, err)
	require.Contains(t, string(data), "Exec=archtoys --start-hidden")
	require.Contains(t, string(data), "X-GNOME-Autostart-enabled=true")

	require.NoError(t, SyncAutostart(false))
	require.NoFileExists(t, AutostartPath())

	// Disabling twice is fine.
	require.NoError(t, SyncAutostart(false))
}
