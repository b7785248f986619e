package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/archtoys/archtoys-tools/internal/config"
	"github.com/archtoys/archtoys-tools/internal/domain/release"
	"github.com/archtoys/archtoys-tools/internal/service/packager"
	"github.com/archtoys/archtoys-tools/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// buildDir containing the built binary and rendered icons.
	buildDir string
	// stageRoot receiving the staged install layout.
	stageRoot string
	// channel the release is published on.
	channel string

	// rootCmd represents the base command for preparing update metadata.
	rootCmd = &cobra.Command{
		Use:   "archtoys-packager [server-socket] [update-folder]",
		Short: "Prepare release metadata and publish it to the server",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &packager.Options{
				ConfigPath:    configPath,
				ServerAddress: args[0],
				UpdateFolder:  args[1],
				BuildDir:      buildDir,
				StageRoot:     stageRoot,
				Channel:       channel,
			}

			return packager.Run(ctx, options)
		},
	}
)

// Execute runs the archtoys-packager CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVarP(&buildDir, "build-dir", "b", "", "build output to stage into the install layout")
	rootCmd.Flags().StringVarP(&stageRoot, "stage-root", "r", "", "root the install layout is staged under")
	rootCmd.Flags().StringVar(&channel, "channel", release.DefaultChannel, "release channel to publish on")
}
