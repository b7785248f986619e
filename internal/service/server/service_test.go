package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/archtoys/archtoys-tools/internal/domain/release"
	repo "github.com/archtoys/archtoys-tools/internal/repository/state"
)

var errTestLoad = errors.New("test load error")

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// state is the release state to return from Load operations.
	state *domain.State
	// loadErr is the error to return from Load operations.
	loadErr error
	// saved stores the last state passed to Save operations.
	saved *domain.State
}

// Load retrieves the current state from the memory repository.
// It returns a pointer to the domain.State and an error if the operation fails.
func (m *memoryRepository) Load(context.Context) (*domain.State, error) {
	return m.state, m.loadErr
}

// Save stores the provided domain.State in memory. It overwrites any previously saved state.
// This method always returns nil and does not perform any validation.
func (m *memoryRepository) Save(_ context.Context, s *domain.State) error {
	m.saved = s

	return nil
}

// TestNewService_LoadsStateOrDefaults asserts newService behavior on existing, missing, and error states.
func TestNewService_LoadsStateOrDefaults(t *testing.T) {
	t.Parallel()

	// Existing state.
	old := &domain.State{
		Timestamp: time.Unix(100, 0),
		PublishedBy: &domain.Actor{
			Hostname: "buildhost",
			Username: "releaser",
		},
		Version: "0.9.3",
		Channel: domain.DefaultChannel,
	}

	s, err := newService(context.Background(), &memoryRepository{state: old})

	require.NoError(t, err)
	require.Equal(t, old.Version, s.state.Version)
	require.Equal(t, old.PublishedBy, s.state.PublishedBy)

	// Not found -> default.
	s, err = newService(context.Background(), &memoryRepository{loadErr: repo.ErrNotFound})

	require.NoError(t, err)
	require.Empty(t, s.state.Version)
	require.Equal(t, domain.DefaultChannel, s.state.Channel)

	// Other error.
	s, err = newService(context.Background(), &memoryRepository{loadErr: errTestLoad})

	require.Error(t, err)
	require.Nil(t, s)
}

// TestService_PublishAndGet verifies PublishRelease persists and GetLatestRelease returns the latest state.
func TestService_PublishAndGet(t *testing.T) {
	t.Parallel()

	repo := new(memoryRepository)
	s, err := newService(context.Background(), repo)
	require.NoError(t, err)

	actor := &domain.Actor{
		Hostname: "buildhost",
		Username: "releaser",
	}

	result, err := s.PublishRelease(context.Background(), actor, "0.9.4", "")

	require.NoError(t, err)
	require.Equal(t, "0.9.4", result.Version)

	// Empty channel falls back to the default.
	require.Equal(t, domain.DefaultChannel, result.Channel)
	require.NotNil(t, result.PublishedBy)

	// Cloned.
	require.NotSame(t, actor, result.PublishedBy)
	require.NotNil(t, repo.saved)

	currentState := s.GetLatestRelease(context.Background())
	require.Equal(t, "0.9.4", currentState.Version)
}
