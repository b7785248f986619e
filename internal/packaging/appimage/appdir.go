package appimage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/archtoys/archtoys-tools/internal/packaging/desktop"
	"github.com/archtoys/archtoys-tools/internal/packaging/icons"
	"github.com/archtoys/archtoys-tools/internal/packaging/layout"
)

// DirName is the conventional AppDir directory name.
const DirName = "AppDir"

// appRunScript makes the bundle relocatable: it puts the bundled usr/bin
// on PATH and hands control to the wrapper, which in turn pins
// SLINT_BACKEND and execs the real binary.
const appRunScript = "#!/bin/sh\n" +
	"HERE=\"$(dirname \"$(readlink -f \"$0\")\")\"\n" +
	"export PATH=\"$HERE/usr/bin:$PATH\"\n" +
	"exec \"$HERE/usr/bin/archtoys\" \"$@\"\n"

// Assemble builds a complete AppDir under workDir from the binary and
// icons in buildDir and returns its path.
func Assemble(buildDir, workDir string) (string, error) {
	appDir := filepath.Join(workDir, DirName)

	binDir := filepath.Join(appDir, "usr", "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return "", fmt.Errorf("create AppDir: %w", err)
	}

	// Real binary next to its wrapper; both resolved through PATH set by AppRun.
	source := filepath.Join(buildDir, layout.BinaryName)

	binary, err := os.ReadFile(filepath.Clean(source))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", source, layout.ErrBinaryMissing)
		}

		return "", fmt.Errorf("read binary: %w", err)
	}

	binaryPath := filepath.Join(binDir, layout.BinaryName)
	if err = os.WriteFile(binaryPath, binary, layout.ExecutableMode); err != nil {
		return "", fmt.Errorf("write binary: %w", err)
	}

	wrapper := layout.WrapperScript(layout.BinaryName)

	wrapperPath := filepath.Join(binDir, layout.WrapperName)
	if err = os.WriteFile(wrapperPath, wrapper, layout.ExecutableMode); err != nil {
		return "", fmt.Errorf("write wrapper: %w", err)
	}

	appRunPath := filepath.Join(appDir, "AppRun")
	if err = os.WriteFile(appRunPath, []byte(appRunScript), layout.ExecutableMode); err != nil {
		return "", fmt.Errorf("write AppRun: %w", err)
	}

	// Desktop entry duplicated at the AppDir root, where the bundling
	// tools expect it.
	entry := desktop.AppEntry()

	entryPath := filepath.Join(appDir, desktop.Filename)
	if err = os.WriteFile(entryPath, entry.Encode(), 0o644); err != nil {
		return "", fmt.Errorf("write desktop entry: %w", err)
	}

	if err = installRootIcon(buildDir, appDir); err != nil {
		return "", err
	}

	return appDir, nil
}

// installRootIcon places the largest rendered icon at the AppDir root and
// points the .DirIcon alias at it.
func installRootIcon(buildDir, appDir string) error {
	largest := icons.Sizes[len(icons.Sizes)-1]

	source := filepath.Join(buildDir, icons.SourceFilename(largest))

	data, err := os.ReadFile(filepath.Clean(source))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", source, icons.ErrSourceMissing)
		}

		return fmt.Errorf("read icon: %w", err)
	}

	iconName := icons.Name + ".png"

	if err = os.WriteFile(filepath.Join(appDir, iconName), data, 0o644); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}

	dirIcon := filepath.Join(appDir, ".DirIcon")

	if err = os.Remove(dirIcon); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale .DirIcon: %w", err)
	}

	if err = os.Symlink(iconName, dirIcon); err != nil {
		return fmt.Errorf("symlink .DirIcon: %w", err)
	}

	return nil
}
