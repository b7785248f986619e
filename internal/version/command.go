package version

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// AttachCobraVersionCommand attaches a `version` subcommand to the provided root command.
// It prints detailed build info.
func AttachCobraVersionCommand(root *cobra.Command) {
	// Subcommand: `version`.
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long:  "Print detailed version information including build metadata, commit hash, and build timestamp. The updater parses this output to detect the locally installed release, so the format is stable.",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Full())
		},
	})
}

// ParseFromOutput extracts the semantic version from `version` subcommand output.
// "version: 0.9.4, commit: abc123, built at: ..." yields "0.9.4".
func ParseFromOutput(output string) (string, bool) {
	const prefix = "version: "

	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, prefix) {
		return "", false
	}

	rest, _, _ := strings.Cut(strings.TrimPrefix(output, prefix), ",")

	rest = strings.TrimSpace(rest)

	return rest, rest != ""
}
