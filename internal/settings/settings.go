package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/archtoys/archtoys-tools/internal/color"
	"github.com/archtoys/archtoys-tools/internal/hotkey"
)

const (
	// AppDirName is the per-user directory under the XDG config base.
	AppDirName = "archtoys-color-picker"

	// Filename is the settings file inside AppDirName.
	Filename = "config.json"
)

// Settings holds everything the picker persists between runs.
// The JSON field names are the on-disk contract and must not change.
type Settings struct {
	DarkMode  bool   `json:"dark_mode"`
	Minimize  bool   `json:"setting_minimize"`
	AutoCopy  bool   `json:"setting_autocopy"`
	Autostart bool   `json:"setting_autostart"`
	Hotkey    string `json:"setting_hotkey"`

	// History keeps picked colors newest first, as raw RGB triples.
	History [][3]uint8 `json:"history"`
}

// Default returns the settings used before the user saved anything.
func Default() *Settings {
	return &Settings{
		Hotkey:  hotkey.DefaultChord,
		History: [][3]uint8{},
	}
}

// BaseDir resolves the XDG config base directory, preferring
// XDG_CONFIG_HOME, then $HOME/.config, then the current directory.
func BaseDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}

	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config")
	}

	return "."
}

// Path returns the absolute settings file location.
func Path() string {
	return filepath.Join(BaseDir(), AppDirName, Filename)
}

// Load reads the settings file. Missing fields keep their defaults, and a
// missing file yields pure defaults without an error. A corrupt file also
// yields defaults, this time with the decode error for the caller to log.
func Load() (*Settings, error) {
	result := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}

		return result, fmt.Errorf("read settings: %w", err)
	}

	if err = json.Unmarshal(data, result); err != nil {
		return Default(), fmt.Errorf("decode settings: %w", err)
	}

	if result.History == nil {
		result.History = [][3]uint8{}
	}

	return result, nil
}

// Save writes the settings file, creating the parent directory as needed.
func (s *Settings) Save() error {
	path := Path()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// PushHistory records a picked color at the front of the history.
func (s *Settings) PushHistory(value color.RGB) {
	s.History = append([][3]uint8{{value.R, value.G, value.B}}, s.History...)
}

// HistoryColors converts the stored triples into color values,
// preserving the newest-first order.
func (s *Settings) HistoryColors() []color.RGB {
	result := make([]color.RGB, 0, len(s.History))

	for _, entry := range s.History {
		result = append(result, color.RGB{R: entry[0], G: entry[1], B: entry[2]})
	}

	return result
}
