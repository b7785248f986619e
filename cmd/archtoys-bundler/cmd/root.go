package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/archtoys/archtoys-tools/internal/config"
	"github.com/archtoys/archtoys-tools/internal/service/bundler"
	"github.com/archtoys/archtoys-tools/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// workDir where the AppDir is assembled.
	workDir string
	// outputDir receiving the finished AppImage.
	outputDir string
	// toolCacheDir overriding the packaging tool cache.
	toolCacheDir string

	// rootCmd represents the base command for producing the portable bundle.
	rootCmd = &cobra.Command{
		Use:   "archtoys-bundler [build-dir]",
		Short: "Assemble the AppDir and produce the portable AppImage",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &bundler.Options{
				ConfigPath:   configPath,
				BuildDir:     args[0],
				WorkDir:      workDir,
				OutputDir:    outputDir,
				ToolCacheDir: toolCacheDir,
			}

			return bundler.Run(ctx, options)
		},
	}
)

// Execute runs the archtoys-bundler CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&workDir, "work-dir", "w", "", "directory the AppDir is assembled in")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory the AppImage is written to")
	rootCmd.Flags().StringVarP(&toolCacheDir, "tool-cache", "t", "", "cache directory for linuxdeploy and appimagetool")
}
