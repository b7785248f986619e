package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/archtoys/archtoys-tools/internal/packaging/desktop"
	"github.com/archtoys/archtoys-tools/internal/packaging/icons"
)

const (
	// BinaryName is the real GUI executable produced by the application build.
	BinaryName = "archtoys-bin"

	// WrapperName is the launcher script users actually invoke.
	WrapperName = "archtoys"

	// LibDir is where the distro package hides the real binary,
	// relative to the install root.
	LibDir = "usr/lib/archtoys"

	// BinDir is where the wrapper lands, relative to the install root.
	BinDir = "usr/bin"

	// ApplicationsDir holds the desktop entry, relative to the install root.
	ApplicationsDir = "usr/share/applications"

	// ExecutableMode is applied to the binary and the wrapper.
	ExecutableMode os.FileMode = 0o755
)

// ErrBinaryMissing is returned when the built application binary cannot be
// found in the build directory.
var ErrBinaryMissing = errors.New("application binary missing")

// Options describes one distro layout installation.
type Options struct {
	// BuildDir contains the built binary and pre-rendered icons.
	BuildDir string
	// Root is the install root; "/" for a live system, a staging
	// directory when packaging.
	Root string
}

// BinaryPath returns the in-layout binary location relative to the root.
func BinaryPath() string {
	return filepath.Join(LibDir, BinaryName)
}

// WrapperPath returns the in-layout wrapper location relative to the root.
func WrapperPath() string {
	return filepath.Join(BinDir, WrapperName)
}

// DesktopEntryPath returns the in-layout desktop entry location relative to the root.
func DesktopEntryPath() string {
	return filepath.Join(ApplicationsDir, desktop.Filename)
}

// WrapperScript renders the launcher script. The wrapper's whole job is to
// pin SLINT_BACKEND (default winit) and hand everything over to the binary.
func WrapperScript(binaryPath string) []byte {
	script := "#!/bin/sh\n" +
		": \"${SLINT_BACKEND:=winit}\"\n" +
		"export SLINT_BACKEND\n" +
		"exec " + binaryPath + " \"$@\"\n"

	return []byte(script)
}

// Install stages the full distro layout under opts.Root:
// binary, wrapper, desktop entry, and the complete icon set.
// It returns the installed paths relative to the root.
func Install(opts *Options) ([]string, error) {
	source := filepath.Join(opts.BuildDir, BinaryName)

	binary, err := os.ReadFile(filepath.Clean(source))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", source, ErrBinaryMissing)
		}

		return nil, fmt.Errorf("read binary: %w", err)
	}

	installed := make([]string, 0, len(icons.Sizes)+4)

	// Real binary under usr/lib/archtoys.
	if err = writeFile(opts.Root, BinaryPath(), binary, ExecutableMode); err != nil {
		return nil, err
	}

	installed = append(installed, BinaryPath())

	// Wrapper referencing the absolute binary location.
	wrapper := WrapperScript("/" + BinaryPath())
	if err = writeFile(opts.Root, WrapperPath(), wrapper, ExecutableMode); err != nil {
		return nil, err
	}

	installed = append(installed, WrapperPath())

	// Desktop entry.
	entry := desktop.AppEntry()
	if err = writeFile(opts.Root, DesktopEntryPath(), entry.Encode(), 0o644); err != nil {
		return nil, err
	}

	installed = append(installed, DesktopEntryPath())

	// Icon set, hicolor plus pixmaps fallback.
	if err = icons.Install(opts.BuildDir, opts.Root); err != nil {
		return nil, err
	}

	for _, size := range icons.Sizes {
		installed = append(installed, icons.HicolorPath(size))
	}

	installed = append(installed, icons.PixmapPath())

	return installed, nil
}

// writeFile writes data at root/relative, creating parent directories.
func writeFile(root, relative string, data []byte, mode os.FileMode) error {
	target := filepath.Join(root, relative)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(relative), err)
	}

	if err := os.WriteFile(target, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", relative, err)
	}

	return nil
}
