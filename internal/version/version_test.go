package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short and Full return non-empty consistent information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
}

// TestParseFromOutput verifies the version probe round-trips through Full().
func TestParseFromOutput(t *testing.T) {
	t.Parallel()

	parsed, ok := ParseFromOutput(Full() + "\n")
	require.True(t, ok)
	require.Equal(t, Short(), parsed)

	_, ok = ParseFromOutput("archtoys-bin: unknown flag")
	require.False(t, ok)

	_, ok = ParseFromOutput("version:   ")
	require.False(t, ok)
}
