// Package layout stages the distro install tree for the color picker:
// the real binary under usr/lib/archtoys, the SLINT_BACKEND wrapper in
// usr/bin, the desktop entry, and the icon set.
package layout
