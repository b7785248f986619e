package desktop

import (
	"fmt"
	"strings"
)

// Filename is the desktop entry filename shared by the distro layout,
// the AppDir root, and the autostart directory.
const Filename = "archtoys.desktop"

const (
	appName    = "Archtoys"
	appComment = "System-wide color picker"
	appIcon    = "archtoys"
	appWMClass = "archtoys-bin"
)

// Entry models the handful of freedesktop desktop-entry fields the
// application ships. Fields are emitted in a fixed order so generated
// files are reproducible.
type Entry struct {
	// Type is the desktop entry type, normally "Application".
	Type string
	// Name is the human-readable application name.
	Name string
	// Comment is the one-line description shown by launchers.
	Comment string
	// Exec is the command line to launch.
	Exec string
	// Icon is the themed icon name.
	Icon string
	// Terminal reports whether the application runs in a terminal.
	Terminal bool
	// StartupWMClass associates windows with this entry; optional.
	StartupWMClass string
	// Categories holds the freedesktop menu categories.
	Categories []string
	// Extra holds trailing non-standard lines, e.g. autostart markers.
	Extra []string
}

// AppEntry returns the launcher entry installed with the application.
func AppEntry() *Entry {
	return &Entry{
		Type:           "Application",
		Name:           appName,
		Comment:        appComment,
		Exec:           "archtoys",
		Icon:           appIcon,
		Terminal:       false,
		StartupWMClass: appWMClass,
		Categories:     []string{"Graphics", "Utility"},
	}
}

// AutostartEntry returns the entry written to the user's autostart
// directory when the autostart preference is enabled. The application
// starts hidden so only the tray icon appears at login.
func AutostartEntry() *Entry {
	entry := AppEntry()
	entry.Exec = "archtoys --start-hidden"
	entry.Extra = []string{"X-GNOME-Autostart-enabled=true"}

	return entry
}

// Encode renders the entry in desktop-entry syntax.
func (e *Entry) Encode() []byte {
	var b strings.Builder

	b.WriteString("[Desktop Entry]\n")
	fmt.Fprintf(&b, "Type=%s\n", e.Type)
	fmt.Fprintf(&b, "Name=%s\n", e.Name)
	fmt.Fprintf(&b, "Comment=%s\n", e.Comment)
	fmt.Fprintf(&b, "Exec=%s\n", e.Exec)
	fmt.Fprintf(&b, "Icon=%s\n", e.Icon)
	fmt.Fprintf(&b, "Terminal=%t\n", e.Terminal)

	if e.StartupWMClass != "" {
		fmt.Fprintf(&b, "StartupWMClass=%s\n", e.StartupWMClass)
	}

	if len(e.Categories) > 0 {
		// Trailing semicolon is mandated by the desktop entry spec.
		fmt.Fprintf(&b, "Categories=%s;\n", strings.Join(e.Categories, ";"))
	}

	for _, line := range e.Extra {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return []byte(b.String())
}

// Validate checks the fields launchers refuse to work without.
func (e *Entry) Validate() error {
	switch {
	case e.Type == "":
		return fmt.Errorf("desktop entry: %w", errMissingType)
	case e.Name == "":
		return fmt.Errorf("desktop entry: %w", errMissingName)
	case e.Exec == "":
		return fmt.Errorf("desktop entry: %w", errMissingExec)
	default:
		return nil
	}
}
