package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/archtoys/archtoys-tools/internal/domain/release"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))
	s, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, s)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns equal state.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "state.json")
	repo := NewFileRepository(file)

	ts := time.Now().UTC().Truncate(time.Second)
	want := &domain.State{
		Timestamp: ts,
		PublishedBy: &domain.Actor{
			Hostname: "buildhost",
			Username: "releaser",
		},
		Version: "0.9.4",
		Channel: domain.DefaultChannel,
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.Version, got.Version)
	require.Equal(t, want.Channel, got.Channel)
	require.Equal(t, want.Timestamp.Unix(), got.Timestamp.Unix())
	require.Equal(t, want.PublishedBy, got.PublishedBy)

	_, err = os.Stat(file)
	require.NoError(t, err)
}
