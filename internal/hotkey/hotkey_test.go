package hotkey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNormalize resolves aliases and cleans up spacing.
func TestNormalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Ctrl+Super+C", Normalize(" ctl + win + C "))
	require.Equal(t, "Super+X", Normalize("Meta+X"))
	require.Equal(t, "Ctrl+Shift+P", Normalize("Ctrl++Shift+P"))
	require.Equal(t, "", Normalize(" + + "))
}

// TestValidate enforces the modifier-plus-one-key rule.
func TestValidate(t *testing.T) {
	t.Parallel()

	chord, err := Validate("ctrl+super+c")
	require.NoError(t, err)
	require.Equal(t, "Ctrl+Super+c", chord)

	_, err = Validate("")
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Validate("A")
	require.ErrorIs(t, err, ErrNoModifier)

	_, err = Validate("Ctrl+Shift")
	require.ErrorIs(t, err, ErrNoKey)

	_, err = Validate("Ctrl+A+B")
	require.ErrorIs(t, err, ErrKeyAfterKey)

	// The default chord must always validate.
	chord, err = Validate(DefaultChord)
	require.NoError(t, err)
	require.Equal(t, DefaultChord, chord)
}

// TestCanonicalKey covers named keys, letters, function keys, and modifiers.
func TestCanonicalKey(t *testing.T) {
	t.Parallel()

	key, ok := CanonicalKey("Key.esc")
	require.True(t, ok)
	require.Equal(t, "Escape", key)

	key, ok = CanonicalKey("return")
	require.True(t, ok)
	require.Equal(t, "Enter", key)

	key, ok = CanonicalKey("q")
	require.True(t, ok)
	require.Equal(t, "Q", key)

	key, ok = CanonicalKey("7")
	require.True(t, ok)
	require.Equal(t, "7", key)

	key, ok = CanonicalKey(";")
	require.True(t, ok)
	require.Equal(t, ";", key)

	key, ok = CanonicalKey("f12")
	require.True(t, ok)
	require.Equal(t, "F12", key)

	// F-numbers outside 1..24 fall back to the raw token.
	key, ok = CanonicalKey("F42")
	require.True(t, ok)
	require.Equal(t, "F42", key)

	// Pure modifiers are not keys.
	_, ok = CanonicalKey("Shift")
	require.False(t, ok)

	_, ok = CanonicalKey("Key.cmd")
	require.False(t, ok)

	_, ok = CanonicalKey("  ")
	require.False(t, ok)
}

// TestFromCapture assembles chords in the fixed modifier order.
func TestFromCapture(t *testing.T) {
	t.Parallel()

	chord, err := FromCapture("c", true, false, false, true)
	require.NoError(t, err)
	require.Equal(t, "Ctrl+Super+C", chord)

	chord, err = FromCapture("Key.left", false, true, true, false)
	require.NoError(t, err)
	require.Equal(t, "Alt+Shift+ArrowLeft", chord)

	_, err = FromCapture("c", false, false, false, false)
	require.ErrorIs(t, err, ErrNoModifier)

	_, err = FromCapture("Shift", true, false, false, false)
	require.ErrorIs(t, err, ErrNoKey)
}
