package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/archtoys/archtoys-tools/internal/logger"
	"github.com/archtoys/archtoys-tools/internal/packaging/desktop"
	"github.com/archtoys/archtoys-tools/internal/packaging/icons"
	"github.com/archtoys/archtoys-tools/internal/packaging/layout"
)

const executableBits = 0o111

// ErrChecksFailed is returned when at least one installation check failed.
var ErrChecksFailed = errors.New("installation checks failed")

// Options configures the installation verifier.
type Options struct {
	// Root is the filesystem prefix the application was staged under,
	// e.g. "/" for a system install or a package build root.
	Root string
	// AppImagePath optionally points at a bundled AppImage to check.
	AppImagePath string
}

// Run inspects an installed tree and reports every missing or malformed
// artifact. All checks run even after the first failure so one pass shows
// the full damage.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "archtoys-verify")

	root := opts.Root
	if root == "" {
		root = string(os.PathSeparator)
	}

	var failures []string

	report := func(check string, err error) {
		if err == nil {
			logger.InfoKV(ctx, "Check passed", "check", check)
			return
		}

		logger.ErrorKV(ctx, "Check failed", "check", check, "error", err)
		failures = append(failures, check)
	}

	report("binary", checkExecutable(filepath.Join(root, layout.BinaryPath())))
	report("wrapper", checkWrapper(filepath.Join(root, layout.WrapperPath())))
	report("desktop-entry", checkDesktopEntry(filepath.Join(root, layout.DesktopEntryPath())))

	for _, size := range icons.Sizes {
		report(
			fmt.Sprintf("icon-%dpx", size),
			checkRegularFile(filepath.Join(root, icons.HicolorPath(size))),
		)
	}

	report("pixmap", checkRegularFile(filepath.Join(root, icons.PixmapPath())))

	if opts.AppImagePath != "" {
		report("appimage", checkExecutable(opts.AppImagePath))
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: %s", ErrChecksFailed, strings.Join(failures, ", "))
	}

	logger.Info(ctx, "All installation checks passed")

	return nil
}

func checkRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	return nil
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.Mode()&executableBits == 0 {
		return fmt.Errorf("%s is not executable", path)
	}

	return nil
}

// checkWrapper verifies the launcher script still pins the renderer
// backend before handing off to the real binary.
func checkWrapper(path string) error {
	if err := checkExecutable(path); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	content := string(data)

	switch {
	case !strings.HasPrefix(content, "#!/bin/sh\n"):
		return fmt.Errorf("%s lacks the shell shebang", path)
	case !strings.Contains(content, "SLINT_BACKEND"):
		return fmt.Errorf("%s does not set the renderer backend", path)
	case !strings.Contains(content, "exec "):
		return fmt.Errorf("%s does not exec the application binary", path)
	}

	return nil
}

func checkDesktopEntry(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	entry, err := desktop.Parse(data)
	if err != nil {
		return err
	}

	if err = entry.Validate(); err != nil {
		return err
	}

	want := desktop.AppEntry()

	switch {
	case entry.Exec != want.Exec:
		return fmt.Errorf("unexpected Exec %q", entry.Exec)
	case entry.Icon != want.Icon:
		return fmt.Errorf("unexpected Icon %q", entry.Icon)
	}

	return nil
}
