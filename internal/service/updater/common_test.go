package updater

import (
	"crypto/sha512"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/archtoys/archtoys-tools/internal/config"
	"github.com/archtoys/archtoys-tools/internal/version"
)

func TestAllowedUserRoles(t *testing.T) {
	t.Parallel()

	roles := AllowedUserRoles()
	require.Len(t, roles, 2)

	require.Contains(t, roles[RoleDesktop], wrapperExecutable())
	require.Contains(t, roles[RoleDesktop], binaryExecutable())
	require.Contains(t, roles[RoleDesktop], updaterExecutable())
	require.Contains(t, roles[RoleDesktop], config.DefaultConfigFilename)

	require.Contains(t, roles[RoleAppImage], AppImageArtifact)
	require.Contains(t, roles[RoleAppImage], updaterExecutable())
	require.NotContains(t, roles[RoleAppImage], binaryExecutable())
}

func TestExecutablesByUserRoles(t *testing.T) {
	t.Parallel()

	executables := ExecutablesByUserRoles()
	require.Equal(t, wrapperExecutable(), executables[RoleDesktop])
	require.Equal(t, AppImageArtifact, executables[RoleAppImage])

	probes := VersionProbesByUserRoles()
	require.Equal(t, binaryExecutable(), probes[RoleDesktop])
	require.Equal(t, AppImageArtifact, probes[RoleAppImage])
}

func TestNewDescription(t *testing.T) {
	t.Parallel()

	description := NewDescription()
	require.Equal(t, version.Short(), description.VersionNumber)
	require.NotNil(t, description.Files)
	require.NotNil(t, description.Roles)
	require.NotNil(t, description.Executables)
}

func TestGetFileChecksum(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "artifact.bin")
	contents := []byte("archtoys release artifact")

	require.NoError(t, os.WriteFile(path, contents, 0o600))

	checksum, err := GetFileChecksum(path)
	require.NoError(t, err)

	expected := sha512.Sum512(contents)
	require.Equal(t, expected[:], checksum)

	_, err = GetFileChecksum(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}

func TestIsUpdaterRunningNow(t *testing.T) {
	t.Chdir(t.TempDir())

	ctx := t.Context()

	require.False(t, IsUpdaterRunningNow(ctx))

	require.NoError(t, os.WriteFile(MarkerFilename, nil, 0o600))
	require.True(t, IsUpdaterRunningNow(ctx))
}

func TestIsPackagerRunningNow(t *testing.T) {
	t.Chdir(t.TempDir())

	ctx := t.Context()

	require.False(t, IsPackagerRunningNow(ctx))

	require.NoError(t, os.WriteFile(PackagerMarkerFilename, nil, 0o600))
	require.True(t, IsPackagerRunningNow(ctx))

	// A stale marker is removed instead of blocking the updater.
	stale := time.Now().Add(-2 * markerLifetime)
	require.NoError(t, os.Chtimes(PackagerMarkerFilename, stale, stale))

	require.False(t, IsPackagerRunningNow(ctx))
	require.NoFileExists(t, PackagerMarkerFilename)
}

func TestRun_RefusesWhilePackagerRunning(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile(PackagerMarkerFilename, nil, 0o600))

	err := Run(t.Context(), &Options{UpdateType: RoleDesktop})
	require.ErrorIs(t, err, errPackagerAlreadyRunning)
}
