package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/archtoys/archtoys-tools/internal/service/verify"
	"github.com/archtoys/archtoys-tools/internal/version"
)

var (
	// root of the installed tree to inspect.
	root string
	// appImagePath optionally pointing at a portable bundle to inspect.
	appImagePath string

	// rootCmd represents the base command for checking an installed tree.
	rootCmd = &cobra.Command{
		Use:   "archtoys-verify",
		Short: "Check an installed tree for missing or malformed artifacts",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &verify.Options{
				Root:         root,
				AppImagePath: appImagePath,
			}

			return verify.Run(ctx, options)
		},
	}
)

// Execute runs the archtoys-verify CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&root, "root", "r", "/", "install root to inspect")
	rootCmd.Flags().StringVarP(&appImagePath, "appimage", "a", "", "path to an AppImage to inspect as well")
}
