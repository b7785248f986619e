package release

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestActorClone verifies that Clone returns a deep copy and handles nil safely.
func TestActorClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Actor)(nil).Clone())

	a := &Actor{
		Hostname: "buildhost",
		Username: "releaser",
	}

	b := a.Clone()

	require.Equal(t, a, b)
	require.NotSame(t, a, b)
}

// TestStateClone verifies that State.Clone copies fields and deep-copies PublishedBy.
func TestStateClone(t *testing.T) {
	t.Parallel()

	ts := time.Now().UTC().Truncate(time.Second)
	s := State{
		Timestamp: ts,
		PublishedBy: &Actor{
			Hostname: "buildhost",
			Username: "releaser",
		},
		Version: "0.9.4",
		Channel: DefaultChannel,
	}

	c := s.Clone()
	require.Equal(t, s.Timestamp, c.Timestamp)
	require.Equal(t, s.Version, c.Version)
	require.Equal(t, s.Channel, c.Channel)
	require.Equal(t, s.PublishedBy, c.PublishedBy)

	// Ensure actor pointer is cloned.
	require.NotSame(t, s.PublishedBy, c.PublishedBy)
}
