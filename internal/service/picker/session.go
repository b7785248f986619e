package picker

import (
	"os"
	"strings"
)

// SessionType classifies the running graphical session.
type SessionType int

const (
	// SessionUnknown means the session type could not be determined.
	SessionUnknown SessionType = iota
	// SessionX11 is a classic X11 session.
	SessionX11
	// SessionWayland is a Wayland session.
	SessionWayland
)

// String returns the lowercase session name.
func (s SessionType) String() string {
	switch s {
	case SessionX11:
		return "x11"
	case SessionWayland:
		return "wayland"
	default:
		return "unknown"
	}
}

// DetectSessionType inspects XDG_SESSION_TYPE. Anything that is not
// explicitly x11 or wayland is reported as unknown.
func DetectSessionType() SessionType {
	switch strings.ToLower(os.Getenv("XDG_SESSION_TYPE")) {
	case "x11":
		return SessionX11
	case "wayland":
		return SessionWayland
	default:
		return SessionUnknown
	}
}
