package icons

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Name is the themed icon name used across all install targets.
const Name = "archtoys"

// AliasName is the icon alias matching the window class of the real binary,
// installed as a symlink next to each icon.
const AliasName = "archtoys-bin"

// Sizes lists the hicolor sizes shipped by the application, in pixels.
//
//nolint:gochecknoglobals // Fixed contract of the icon set.
var Sizes = []int{16, 24, 32, 48, 64, 128, 256, 512, 1024}

// ErrSourceMissing is returned when a pre-rendered icon is absent from the
// build directory.
var ErrSourceMissing = errors.New("icon source missing")

// SourceFilename returns the pre-rendered icon filename for a size,
// e.g. "archtoys-64.png". The build pipeline renders these ahead of time;
// no scaling happens here.
func SourceFilename(size int) string {
	return fmt.Sprintf("%s-%d.png", Name, size)
}

// HicolorPath returns the themed icon path for a size, relative to the
// install root: usr/share/icons/hicolor/<N>x<N>/apps/archtoys.png.
func HicolorPath(size int) string {
	return filepath.Join("usr", "share", "icons", "hicolor",
		fmt.Sprintf("%dx%d", size, size), "apps", Name+".png")
}

// PixmapPath returns the legacy fallback path relative to the install root.
func PixmapPath() string {
	return filepath.Join("usr", "share", "pixmaps", Name+".png")
}

// Install copies every pre-rendered icon from buildDir into root at the
// hicolor locations, installs the legacy pixmap (largest size), and places
// an "archtoys-bin.png" symlink alias next to each installed icon.
func Install(buildDir, root string) error {
	for _, size := range Sizes {
		source := filepath.Join(buildDir, SourceFilename(size))

		if _, err := os.Stat(source); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%s: %w", source, ErrSourceMissing)
			}

			return fmt.Errorf("stat %s: %w", source, err)
		}

		target := filepath.Join(root, HicolorPath(size))
		if err := installIcon(source, target); err != nil {
			return err
		}
	}

	// Legacy pixmaps fallback uses the largest rendered size.
	largest := Sizes[len(Sizes)-1]

	source := filepath.Join(buildDir, SourceFilename(largest))
	if err := installIcon(source, filepath.Join(root, PixmapPath())); err != nil {
		return err
	}

	return nil
}

// installIcon copies one icon and refreshes its -bin alias symlink.
func installIcon(source, target string) error {
	if err := copyFile(source, target); err != nil {
		return err
	}

	alias := filepath.Join(filepath.Dir(target), AliasName+".png")

	// Replace any stale alias; a dangling link would survive os.Symlink.
	if err := os.Remove(alias); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale alias: %w", err)
	}

	if err := os.Symlink(filepath.Base(target), alias); err != nil {
		return fmt.Errorf("symlink icon alias: %w", err)
	}

	return nil
}

// copyFile copies source to target, creating parent directories.
func copyFile(source, target string) error {
	data, err := os.ReadFile(filepath.Clean(source))
	if err != nil {
		return fmt.Errorf("read icon: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create icon directory: %w", err)
	}

	if err = os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}

	return nil
}
