package bundler

import (
	"context"
	"errors"
	"fmt"

	"github.com/archtoys/archtoys-tools/internal/config"
	"github.com/archtoys/archtoys-tools/internal/logger"
	"github.com/archtoys/archtoys-tools/internal/packaging/appimage"
	"github.com/archtoys/archtoys-tools/internal/version"
)

// Options contains inputs for the bundler entry point.
type Options struct {
	// ConfigPath is an optional path to the settings YAML; used to pick up
	// the tool cache directory when ToolCacheDir is not set.
	ConfigPath string
	// BuildDir contains the built binary and pre-rendered icons.
	BuildDir string
	// WorkDir is where the AppDir is assembled; defaults to OutputDir.
	WorkDir string
	// OutputDir receives the finished AppImage.
	OutputDir string
	// ToolCacheDir overrides the cache location for linuxdeploy and appimagetool.
	ToolCacheDir string
}

var errBuildDirRequired = errors.New("build directory must be provided")

// Run assembles the AppDir and produces the AppImage artifact.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "archtoys-bundler")

	if opts.BuildDir == "" {
		return errBuildDirRequired
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = outputDir
	}

	cacheDir := resolveToolCacheDir(ctx, opts)

	appDir, err := appimage.Assemble(opts.BuildDir, workDir)
	if err != nil {
		return fmt.Errorf("assemble AppDir: %w", err)
	}

	logger.InfoKV(ctx, "AppDir assembled", "path", appDir)

	artifact, err := appimage.Build(ctx, &appimage.BuildOptions{
		AppDir:    appDir,
		OutputDir: outputDir,
		CacheDir:  cacheDir,
		Version:   version.Short(),
	})
	if err != nil {
		return fmt.Errorf("build AppImage: %w", err)
	}

	logger.InfoKV(ctx, "Bundler completed successfully", "artifact", artifact)

	return nil
}

// resolveToolCacheDir picks the tool cache directory from the explicit option,
// the settings file, or the per-user default, in that order.
func resolveToolCacheDir(ctx context.Context, opts *Options) string {
	if opts.ToolCacheDir != "" {
		return opts.ToolCacheDir
	}

	if cfg, err := config.Load(opts.ConfigPath); err == nil && cfg.ToolCacheDir != "" {
		return cfg.ToolCacheDir
	}

	cacheDir := config.DefaultToolCacheDir()

	logger.DebugKV(ctx, "Using default tool cache", "path", cacheDir)

	return cacheDir
}
