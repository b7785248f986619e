package desktop

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errMissingType   = errors.New("Type field is required")
	errMissingName   = errors.New("Name field is required")
	errMissingExec   = errors.New("Exec field is required")
	errMissingHeader = errors.New("missing [Desktop Entry] header")
)

// Parse decodes a desktop entry previously produced by Encode (or any
// plain single-group entry). It is intentionally minimal: no locale keys,
// no escaping, no multiple groups. That is all the verifier needs.
func Parse(data []byte) (*Entry, error) {
	lines := strings.Split(string(data), "\n")

	seenHeader := false
	entry := new(Entry)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if line != "[Desktop Entry]" {
				// Another group starts; the main group is done.
				break
			}

			seenHeader = true

			continue
		}

		if !seenHeader {
			return nil, errMissingHeader
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("desktop entry: malformed line %q", line)
		}

		assignField(entry, strings.TrimSpace(key), strings.TrimSpace(value))
	}

	if !seenHeader {
		return nil, errMissingHeader
	}

	return entry, nil
}

// assignField stores a key/value pair into the entry.
func assignField(entry *Entry, key, value string) {
	switch key {
	case "Type":
		entry.Type = value
	case "Name":
		entry.Name = value
	case "Comment":
		entry.Comment = value
	case "Exec":
		entry.Exec = value
	case "Icon":
		entry.Icon = value
	case "Terminal":
		entry.Terminal = value == "true"
	case "StartupWMClass":
		entry.StartupWMClass = value
	case "Categories":
		entry.Categories = splitList(value)
	default:
		entry.Extra = append(entry.Extra, key+"="+value)
	}
}

// splitList splits a semicolon list, dropping the trailing empty element.
func splitList(value string) []string {
	parts := strings.Split(value, ";")

	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			result = append(result, part)
		}
	}

	return result
}
