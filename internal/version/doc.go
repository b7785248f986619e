// Package version exposes build metadata for the toolchain.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags and default to sensible values for local builds. The `version`
// subcommand output doubles as the local version probe for the updater,
// which is why ParseFromOutput lives here next to the printer.
package version
