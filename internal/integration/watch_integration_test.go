package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/archtoys/archtoys-tools/internal/config"
	"github.com/archtoys/archtoys-tools/internal/service/updater"
)

// TestUpdater_Watch_PollsAndReturnsOnCancel runs the watcher against a live
// server with nothing published and cancels it.
func TestUpdater_Watch_PollsAndReturnsOnCancel(t *testing.T) {
	t.Parallel()

	// Setup test environment with server and temporary state.
	addr := reservePort(t)
	statePath := filepath.Join(t.TempDir(), "state.json")

	stop := startGRPC(t, addr, statePath)
	defer stop()

	// Create temporary config file for the watcher.
	cfgPath := filepath.Join(t.TempDir(), "watch-settings.yaml")
	err := config.Save(cfgPath, &config.Config{
		ServerAddress: addr,
		Timeout:       1 * time.Second,
	})
	require.NoError(t, err)

	// Setup cancellable context for the watcher.
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		options := &updater.WatchOptions{
			Options: updater.Options{
				ConfigPath: cfgPath,
				UpdateType: updater.RoleDesktop,
			},
			PollInterval: 50 * time.Millisecond,
		}

		done <- updater.Watch(runCtx, options)
	}()

	// Wait for the watcher to start polling, then cancel.
	time.Sleep(120 * time.Millisecond)
	cancel()

	// Verify the watcher exits cleanly on cancellation.
	err = <-done
	require.NoError(t, err)
}
