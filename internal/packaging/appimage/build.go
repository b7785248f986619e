package appimage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/archtoys/archtoys-tools/internal/logger"
)

// ErrNoArtifact is returned when the bundling tool reports success but
// leaves no AppImage behind.
var ErrNoArtifact = errors.New("no AppImage produced")

// BuildOptions describes one AppImage build.
type BuildOptions struct {
	// AppDir is the assembled application directory.
	AppDir string
	// OutputDir receives the finished *.AppImage artifact.
	OutputDir string
	// CacheDir stores the downloaded bundling tools between runs.
	CacheDir string
	// Version is embedded into the artifact name when set.
	Version string
}

// Build produces an AppImage from opts.AppDir. It runs linuxdeploy first;
// if linuxdeploy exits non-zero it retries with appimagetool directly.
// Either way, a run that ends with no *.AppImage in the output directory
// is a failure.
func Build(ctx context.Context, opts *BuildOptions) (string, error) {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	appDir, err := filepath.Abs(opts.AppDir)
	if err != nil {
		return "", err
	}

	linuxdeploy, err := EnsureTool(ctx, opts.CacheDir, LinuxDeploy)
	if err != nil {
		return "", err
	}

	if err = runTool(ctx, opts, linuxdeploy, "--appdir", appDir, "--output", "appimage"); err != nil {
		logger.WarnKV(ctx, "linuxdeploy failed, falling back to appimagetool", "error", err)

		var appimagetool string

		appimagetool, err = EnsureTool(ctx, opts.CacheDir, AppImageTool)
		if err != nil {
			return "", err
		}

		if err = runTool(ctx, opts, appimagetool, appDir); err != nil {
			return "", fmt.Errorf("appimagetool: %w", err)
		}
	}

	artifact, err := findArtifact(opts.OutputDir)
	if err != nil {
		return "", err
	}

	if err = os.Chmod(artifact, 0o755); err != nil {
		return "", fmt.Errorf("mark artifact executable: %w", err)
	}

	logger.InfoKV(ctx, "AppImage ready", "path", artifact)

	return artifact, nil
}

// runTool executes one bundling tool inside the output directory.
func runTool(ctx context.Context, opts *BuildOptions, tool string, args ...string) error {
	logger.InfoKV(ctx, "Running bundling tool", "tool", filepath.Base(tool), "args", args)

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = opts.OutputDir
	cmd.Env = append(os.Environ(), "ARCH=x86_64")

	if opts.Version != "" {
		cmd.Env = append(cmd.Env,
			"VERSION="+opts.Version,
			"LINUXDEPLOY_OUTPUT_VERSION="+opts.Version)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", filepath.Base(tool), err, output)
	}

	return nil
}

// findArtifact locates the produced AppImage in the output directory.
func findArtifact(outputDir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(outputDir, "*.AppImage"))
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%s: %w", outputDir, ErrNoArtifact)
	}

	return matches[0], nil
}
