package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/archtoys/archtoys-tools/internal/packaging/desktop"
)

// AutostartPath returns the per-user autostart entry location.
func AutostartPath() string {
	return filepath.Join(BaseDir(), "autostart", desktop.Filename)
}

// SyncAutostart reconciles the autostart entry with the user's preference:
// enabled writes the entry, disabled removes it. Removing an entry that was
// never written is not an error.
func SyncAutostart(enabled bool) error {
	path := AutostartPath()

	if !enabled {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove autostart entry: %w", err)
		}

		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create autostart directory: %w", err)
	}

	if err := os.WriteFile(path, desktop.AutostartEntry().Encode(), 0o644); err != nil {
		return fmt.Errorf("write autostart entry: %w", err)
	}

	return nil
}
