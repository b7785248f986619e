// Package verify implements one-shot post-install checks: the staged
// binary, wrapper script, desktop entry, icon set and optional AppImage
// are all inspected and every failure is reported in a single pass.
package verify
