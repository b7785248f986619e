package release

import "time"

// DefaultChannel is used when a publisher does not name a channel.
const DefaultChannel = "stable"

// Actor identifies who performed an action in the system.
type Actor struct {
	// Hostname is the machine name where the action was performed.
	Hostname string
	// Username is the system user who triggered the action.
	Username string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// State represents the latest published release at a specific point in time.
type State struct {
	// Timestamp is when the release was published.
	Timestamp time.Time
	// PublishedBy is the user who published the release.
	PublishedBy *Actor
	// Version is the semantic version of the release.
	Version string
	// Channel is the distribution channel the release belongs to.
	Channel string
}

// Clone returns a copy of the state to avoid leaking internal references.
func (s *State) Clone() *State {
	return &State{
		Timestamp:   s.Timestamp,
		PublishedBy: s.PublishedBy.Clone(),
		Version:     s.Version,
		Channel:     s.Channel,
	}
}
