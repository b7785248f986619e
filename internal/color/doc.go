// Package color implements the 24-bit color model shared by the picker
// and the terminal output: canonical HEX/RGB/HSL/HSV renderings, tolerant
// parsing of user-typed values, and the lighter/darker shade ladder shown
// next to the current color.
//
// HSL and HSV math is delegated to go-colorful; this package only fixes
// the rounding, clamping, and wrapping rules so that formatted output is
// byte-identical to what the desktop application displays.
package color
