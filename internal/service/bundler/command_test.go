package bundler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archtoys/archtoys-tools/internal/packaging/appimage"
	"github.com/archtoys/archtoys-tools/internal/packaging/icons"
	"github.com/archtoys/archtoys-tools/internal/packaging/layout"
)

func prepareBuildDir(t *testing.T) string {
	t.Helper()

	buildDir := t.TempDir()

	err := os.WriteFile(filepath.Join(buildDir, layout.BinaryName), []byte("fake-binary"), 0o755)
	require.NoError(t, err)

	for _, size := range icons.Sizes {
		err = os.WriteFile(filepath.Join(buildDir, icons.SourceFilename(size)), []byte("png"), 0o644)
		require.NoError(t, err)
	}

	return buildDir
}

// TestRun_ProducesArtifact drives the full bundling flow with a stubbed
// linuxdeploy so nothing is downloaded or executed for real.
func TestRun_ProducesArtifact(t *testing.T) {
	t.Parallel()

	cacheDir := t.TempDir()
	outputDir := t.TempDir()

	stub := "#!/bin/sh\necho fake > archtoys.AppImage\n"
	err := os.WriteFile(filepath.Join(cacheDir, appimage.LinuxDeploy.Name), []byte(stub), 0o755)
	require.NoError(t, err)

	err = Run(context.Background(), &Options{
		BuildDir:     prepareBuildDir(t),
		OutputDir:    outputDir,
		ToolCacheDir: cacheDir,
	})
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(outputDir, "archtoys.AppImage"))
	require.DirExists(t, filepath.Join(outputDir, appimage.DirName))
}

// TestRun_RequiresBuildDir verifies input validation.
func TestRun_RequiresBuildDir(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{})
	require.ErrorIs(t, err, errBuildDirRequired)
}
