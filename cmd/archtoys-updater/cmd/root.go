package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/archtoys/archtoys-tools/internal/config"
	"github.com/archtoys/archtoys-tools/internal/service/updater"
	"github.com/archtoys/archtoys-tools/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// watch keeps the updater running and polling for new releases.
	watch bool
	// pollInterval between release checks in watch mode.
	pollInterval time.Duration

	// rootCmd represents the base command for downloading and applying updates.
	rootCmd = &cobra.Command{
		Use:       "archtoys-updater [desktop|appimage]",
		Short:     "Download and apply application updates from the server",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{updater.RoleDesktop, updater.RoleAppImage},
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &updater.Options{
				ConfigPath: configPath,
				UpdateType: args[0],
			}

			if watch {
				return updater.Watch(ctx, &updater.WatchOptions{
					Options:      *options,
					PollInterval: pollInterval,
				})
			}

			return updater.Run(ctx, options)
		},
	}
)

// Execute runs the archtoys-updater CLI and exits with non-zero status on error.
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
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and poll the server for new releases")
	rootCmd.Flags().DurationVar(&pollInterval, "poll-interval", updater.DefaultPollInterval,
		"interval between release checks in watch mode")
}
