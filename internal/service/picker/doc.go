// Package picker implements the headless screen color pick flow.
//
// On KDE Wayland it asks the compositor's ColorPicker DBus interface first
// and falls back to the XDG desktop portal PickColor request; on other
// sessions it goes straight to the portal. Picked colors are appended to the
// shared history and optionally copied to the clipboard.
package picker
