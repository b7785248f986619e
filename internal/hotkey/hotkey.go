package hotkey

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultChord is the hotkey registered when no user preference exists
// or the stored one fails to validate.
const DefaultChord = "Ctrl+Super+C"

var (
	// ErrEmpty is returned when a chord contains no tokens at all.
	ErrEmpty = errors.New("hotkey cannot be empty")
	// ErrNoModifier is returned when a captured chord lacks modifiers.
	ErrNoModifier = errors.New("hotkey must include at least one modifier (Ctrl, Alt, Shift, Super)")
	// ErrNoKey is returned when a captured chord consists of modifiers only.
	ErrNoKey = errors.New("press a non-modifier key together with your modifier(s)")
	// ErrKeyAfterKey is returned when a chord carries more than one non-modifier key.
	ErrKeyAfterKey = errors.New("hotkey must contain exactly one non-modifier key")
)

// modifierAliases maps modifier spellings to their canonical form.
var modifierAliases = map[string]string{
	"CTRL":    "Ctrl",
	"CTL":     "Ctrl",
	"CONTROL": "Ctrl",
	"ALT":     "Alt",
	"SHIFT":   "Shift",
	"META":    "Super",
	"SUPER":   "Super",
	"CMD":     "Super",
	"COMMAND": "Super",
	"WIN":     "Super",
	"WINDOWS": "Super",
}

// namedKeys maps upper-cased key spellings to their canonical names.
var namedKeys = map[string]string{
	"ESC":        "Escape",
	"ESCAPE":     "Escape",
	"RETURN":     "Enter",
	"ENTER":      "Enter",
	"TAB":        "Tab",
	"SPACE":      "Space",
	"BACKSPACE":  "Backspace",
	"DELETE":     "Delete",
	"DEL":        "Delete",
	"INSERT":     "Insert",
	"HOME":       "Home",
	"END":        "End",
	"PAGEUP":     "PageUp",
	"PAGEDOWN":   "PageDown",
	"UP":         "ArrowUp",
	"ARROWUP":    "ArrowUp",
	"DOWN":       "ArrowDown",
	"ARROWDOWN":  "ArrowDown",
	"LEFT":       "ArrowLeft",
	"ARROWLEFT":  "ArrowLeft",
	"RIGHT":      "ArrowRight",
	"ARROWRIGHT": "ArrowRight",
}

// Normalize rewrites a user-typed chord into canonical token spelling:
// tokens trimmed, modifier aliases resolved (Meta/Win -> Super, Ctl -> Ctrl),
// empty tokens dropped, joined with "+". Unknown tokens pass through verbatim.
func Normalize(input string) string {
	rawTokens := strings.Split(input, "+")
	tokens := make([]string, 0, len(rawTokens))

	for _, token := range rawTokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if canonical, ok := modifierAliases[strings.ToUpper(token)]; ok {
			// Ctrl stays Ctrl: the aliases table only renames the odd spellings,
			// but applying it uniformly keeps the casing canonical too.
			token = canonical
		}

		tokens = append(tokens, token)
	}

	return strings.Join(tokens, "+")
}

// Validate normalizes the chord and checks that it can be registered:
// non-empty, at least one modifier, exactly one non-modifier key.
// It returns the canonical chord text.
func Validate(input string) (string, error) {
	normalized := Normalize(input)
	if normalized == "" {
		return "", ErrEmpty
	}

	var (
		hasModifier bool
		keys        int
	)

	for _, token := range strings.Split(normalized, "+") {
		if isModifier(token) {
			hasModifier = true
			continue
		}

		keys++
	}

	if !hasModifier {
		return "", ErrNoModifier
	}

	switch {
	case keys == 0:
		return "", ErrNoKey
	case keys > 1:
		return "", ErrKeyAfterKey
	}

	return normalized, nil
}

// CanonicalKey converts a captured key label into its canonical spelling.
// Modifier keys and unrecognizable input yield ok=false; callers treat that
// as "keep waiting for a real key".
func CanonicalKey(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	token := strings.TrimPrefix(trimmed, "Key.")
	upper := strings.ToUpper(token)

	if _, isMod := modifierAliases[upper]; isMod {
		return "", false
	}

	if named, ok := namedKeys[upper]; ok {
		return named, true
	}

	if key, ok := canonicalSingleRune(token); ok {
		return key, true
	}

	if isFunctionKey(upper) {
		return upper, true
	}

	return token, true
}

// FromCapture assembles a chord from a captured key plus modifier flags,
// in Ctrl, Alt, Shift, Super order.
func FromCapture(keyText string, ctrl, alt, shift, super bool) (string, error) {
	if !ctrl && !alt && !shift && !super {
		return "", ErrNoModifier
	}

	key, ok := CanonicalKey(keyText)
	if !ok {
		return "", ErrNoKey
	}

	parts := make([]string, 0, 5)
	if ctrl {
		parts = append(parts, "Ctrl")
	}

	if alt {
		parts = append(parts, "Alt")
	}

	if shift {
		parts = append(parts, "Shift")
	}

	if super {
		parts = append(parts, "Super")
	}

	parts = append(parts, key)

	return strings.Join(parts, "+"), nil
}

// isModifier reports whether a canonical token is one of the four modifiers.
func isModifier(token string) bool {
	switch token {
	case "Ctrl", "Alt", "Shift", "Super":
		return true
	default:
		return false
	}
}

// canonicalSingleRune canonicalizes one-character keys: letters upper-cased,
// digits and the printable punctuation row kept as-is.
func canonicalSingleRune(token string) (string, bool) {
	if len(token) != 1 {
		return "", false
	}

	ch := token[0]

	switch {
	case ch >= 'a' && ch <= 'z':
		return strings.ToUpper(token), true
	case ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return token, true
	}

	switch ch {
	case '`', '\\', '[', ']', ',', '=', '-', '.', '\'', ';', '/':
		return token, true
	}

	return "", false
}

// isFunctionKey reports whether the token is F1..F24.
func isFunctionKey(upper string) bool {
	rest, found := strings.CutPrefix(upper, "F")
	if !found {
		return false
	}

	n, err := strconv.Atoi(rest)
	if err != nil {
		return false
	}

	return n >= 1 && n <= 24
}
