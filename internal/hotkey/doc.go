// Package hotkey validates and canonicalizes the global hotkey chord text
// stored in user settings ("Ctrl+Super+C" and friends). Registering the
// chord with the compositor is the GUI's job; everything here is pure
// string handling so the picker and settings tooling can verify a chord
// without a display server.
package hotkey
