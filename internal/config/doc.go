// Package config loads and persists the YAML settings shared by the
// archtoys distribution binaries: release server address, update folder
// URL, release state path, and the bundler tool cache location.
//
// User-facing application preferences (dark mode, hotkey, color history)
// are a separate JSON document owned by the settings package; this file
// only concerns the distribution pipeline.
package config
