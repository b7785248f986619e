package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/archtoys/archtoys-tools/internal/config"
	pb "github.com/archtoys/archtoys-tools/internal/pb/v1"
	"github.com/archtoys/archtoys-tools/internal/service/common"
	"github.com/archtoys/archtoys-tools/internal/service/packager"
	upd "github.com/archtoys/archtoys-tools/internal/service/updater"
	"github.com/archtoys/archtoys-tools/internal/version"
)

// TestPackager_WritesManifestAndPublishes generates a manifest with placeholder
// artifacts and verifies the release was recorded on the server.
func TestPackager_WritesManifestAndPublishes(t *testing.T) {
	// Setup test directory and change working directory.
	dir := t.TempDir()
	prev, _ := os.Getwd() //nolint:errcheck // Test code needs simple os.Getwd for directory change.

	t.Chdir(dir)

	t.Cleanup(func() {
		t.Chdir(prev)
	})

	// Start a real gRPC server so reachability check passes.
	addr := reservePort(t)
	statePath := filepath.Join(dir, "state.json")

	stop := startGRPC(t, addr, statePath)
	defer stop()

	// Create placeholder artifacts expected by packager.
	for _, name := range upd.FilesWithChecksum() {
		f, err := os.Create(name)
		require.NoError(t, err)

		_ = f.Close()
	}

	// Run packager with timeout context.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	options := &packager.Options{
		// Ensure the settings file is one of checksummed files.
		ConfigPath:    config.DefaultConfigFilename,
		UpdateFolder:  "http://localhost/updates",
		ServerAddress: addr,
		Channel:       "beta",
	}

	err := packager.Run(ctx, options)
	require.NoError(t, err)

	// Verify version manifest file was created.
	_, err = os.Stat(upd.VersionFilename)
	require.NoError(t, err)

	// The running marker must not survive the run.
	require.NoFileExists(t, upd.PackagerMarkerFilename)

	// Verify the release was published on the server.
	c, err := common.Dial(ctx, addr)
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	actor := &pb.SystemActor{Hostname: "test-host", Username: "test-user"}

	got, err := c.GetLatestRelease(ctx, actor)
	require.NoError(t, err)
	require.Equal(t, version.Short(), got.GetVersion())
	require.Equal(t, "beta", got.GetChannel())
}
