package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/archtoys/archtoys-tools/internal/config"
)

// TestResolveListenAddress covers override, config extraction, and error cases.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("server.example.com:8080", ":9090")
	require.NoError(t, err)
	require.Equal(t, ":9090", addr)

	addr, err = resolveListenAddress("server.example.com:8080", "")
	require.NoError(t, err)
	require.Equal(t, ":8080", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port-here", "")
	require.Error(t, err)
}

// TestRun_GracefulShutdown starts the server on an ephemeral port and verifies
// it stops cleanly on context cancellation without leaking goroutines.
func TestRun_GracefulShutdown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	configPath := filepath.Join(dir, config.DefaultConfigFilename)

	settings := &config.Config{
		ServerAddress: "localhost:50055",
		StateFile:     filepath.Join(dir, config.DefaultStateFilename),
	}
	require.NoError(t, config.Save(configPath, settings))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, &Options{
			ConfigPath:    configPath,
			ListenAddress: "127.0.0.1:0",
		})
	}()

	// Give the listener a moment to come up before stopping it.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}

	// State file is only written on publish, not on startup.
	_, err := os.Stat(settings.StateFile)
	require.True(t, os.IsNotExist(err))
}
