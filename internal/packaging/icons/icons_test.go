package icons

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeSources drops placeholder pre-rendered icons into dir.
func writeSources(t *testing.T, dir string) {
	t.Helper()

	for _, size := range Sizes {
		data := []byte(fmt.Sprintf("png-%d", size))
		require.NoError(t, os.WriteFile(filepath.Join(dir, SourceFilename(size)), data, 0o644))
	}
}

// TestInstall lays out every declared size plus the pixmap fallback and aliases.
func TestInstall(t *testing.T) {
	t.Parallel()

	buildDir := t.TempDir()
	root := t.TempDir()

	writeSources(t, buildDir)

	require.NoError(t, Install(buildDir, root))

	for _, size := range Sizes {
		installed := filepath.Join(root, HicolorPath(size))

		data, err := os.ReadFile(installed)
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("png-%d", size), string(data))

		// Alias resolves to the real icon.
		alias := filepath.Join(filepath.Dir(installed), AliasName+".png")

		linkTarget, err := os.Readlink(alias)
		require.NoError(t, err)
		require.Equal(t, Name+".png", linkTarget)

		aliasData, err := os.ReadFile(alias)
		require.NoError(t, err)
		require.Equal(t, data, aliasData)
	}

	// Pixmap fallback carries the largest size.
	data, err := os.ReadFile(filepath.Join(root, PixmapPath()))
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("png-%d", Sizes[len(Sizes)-1]), string(data))
}

// TestInstallMissingSource fails with a helpful sentinel.
func TestInstallMissingSource(t *testing.T) {
	t.Parallel()

	buildDir := t.TempDir()
	root := t.TempDir()

	// Only the first size present.
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, SourceFilename(Sizes[0])), []byte("x"), 0o644))

	err := Install(buildDir, root)
	require.ErrorIs(t, err, ErrSourceMissing)
}

// TestInstallReplacesStaleAlias overwrites a previous symlink in place.
func TestInstallReplacesStaleAlias(t *testing.T) {
	t.Parallel()

	buildDir := t.TempDir()
	root := t.TempDir()

	writeSources(t, buildDir)

	require.NoError(t, Install(buildDir, root))
	// Second run must not fail on existing aliases.
	require.NoError(t, Install(buildDir, root))
}
