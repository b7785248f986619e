// Package settings persists the user-facing picker preferences and the
// pick history as JSON under the XDG config directory, and keeps the
// per-user autostart entry in sync with the autostart preference.
package settings
