package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/archtoys/archtoys-tools/internal/service/picker"
	"github.com/archtoys/archtoys-tools/internal/version"
)

var (
	// format of the printed color value.
	format string
	// copyToClipboard forces the result onto the clipboard.
	copyToClipboard bool
	// noHistory skips recording the pick.
	noHistory bool
	// timeout bounds the wait for the compositor response.
	timeout time.Duration

	// rootCmd represents the base command for picking a color from the screen.
	rootCmd = &cobra.Command{
		Use:   "archtoys-pick",
		Short: "Pick a color from the screen and print it",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &picker.Options{
				Format:    format,
				Copy:      copyToClipboard,
				NoHistory: noHistory,
				Timeout:   timeout,
			}

			return picker.Run(ctx, options)
		},
	}
)

// Execute runs the archtoys-pick CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&format, "format", "f", "all", "output format: hex, rgb, hsl, hsv or all")
	rootCmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "copy the picked color to the clipboard")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record the pick in the color history")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "maximum time to wait for the compositor response")
}
