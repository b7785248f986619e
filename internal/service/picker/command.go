package picker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/archtoys/archtoys-tools/internal/color"
	"github.com/archtoys/archtoys-tools/internal/logger"
	"github.com/archtoys/archtoys-tools/internal/settings"
)

const (
	// lockFilename guards against two concurrent pick requests fighting
	// over the same portal dialog.
	lockFilename = "archtoys-pick.lock"

	// lockLifetime is the period after which a stale lock is ignored.
	lockLifetime = 30 * time.Second

	// defaultPickTimeout bounds how long we wait for the user to click.
	defaultPickTimeout = 2 * time.Minute
)

var errPickerAlreadyRunning = errors.New("a pick is already in progress")

// Options are inputs accepted by the pick entry point.
type Options struct {
	// Format selects the printed representation: hex, rgb, hsl, hsv or all.
	Format string
	// Copy forces the picked color onto the clipboard regardless of the
	// auto-copy preference.
	Copy bool
	// NoHistory skips recording the pick in the shared history.
	NoHistory bool
	// Timeout bounds the wait for the compositor or portal response.
	Timeout time.Duration
}

// Run performs one interactive color pick and prints the result.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "archtoys-pick")

	unlock, err := acquireLock(ctx)
	if err != nil {
		return err
	}

	defer unlock()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultPickTimeout
	}

	pickCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	session := DetectSessionType()
	logger.DebugKV(ctx, "Detected session", "type", session.String())

	picked, err := pickColor(pickCtx, session)
	if err != nil {
		return fmt.Errorf("pick color: %w", err)
	}

	if picked == nil {
		logger.Info(ctx, "Pick cancelled")
		return nil
	}

	prefs, err := settings.Load()
	if err != nil {
		logger.Warnf(ctx, "Could not load settings, continuing with defaults: %v", err)
	}

	if !opts.NoHistory {
		prefs.PushHistory(*picked)

		if err = prefs.Save(); err != nil {
			logger.Warnf(ctx, "Could not record pick history: %v", err)
		}
	}

	if opts.Copy || prefs.AutoCopy {
		if err = clipboard.WriteAll(picked.Hex()); err != nil {
			logger.Warnf(ctx, "Could not copy to clipboard: %v", err)
		} else {
			logger.DebugKV(ctx, "Copied to clipboard", "value", picked.Hex())
		}
	}

	fmt.Print(Render(*picked, opts.Format))

	return nil
}

// acquireLock writes the single-flight lock file and returns its release
// function. A fresh lock from another process aborts the run; a stale one
// is replaced.
func acquireLock(ctx context.Context) (func(), error) {
	path := filepath.Join(lockDir(), lockFilename)

	if info, err := os.Stat(path); err == nil {
		if time.Since(info.ModTime()) <= lockLifetime {
			return nil, errPickerAlreadyRunning
		}

		logger.Info(ctx, "Stale pick lock found, replacing it")

		if err = os.Remove(path); err != nil {
			return nil, fmt.Errorf("remove stale lock: %w", err)
		}
	}

	lockFile, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, errPickerAlreadyRunning
		}

		return nil, fmt.Errorf("create lock: %w", err)
	}

	if err = lockFile.Close(); err != nil {
		return nil, err
	}

	return func() {
		_ = os.Remove(path)
	}, nil
}

// lockDir returns a per-user directory for the single-flight lock. A lock
// in the shared temp dir would let one user's pick block every other user.
func lockDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}

	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}

	return os.TempDir()
}

// formatValue returns the requested single-format representation.
func formatValue(value color.RGB, format string) (string, bool) {
	switch format {
	case "hex", "":
		return value.Hex(), true
	case "rgb":
		return value.RGBString(), true
	case "hsl":
		return value.HSLString(), true
	case "hsv":
		return value.HSVString(), true
	default:
		return "", false
	}
}
