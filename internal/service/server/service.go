package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/archtoys/archtoys-tools/internal/domain/release"
	"github.com/archtoys/archtoys-tools/internal/logger"
	repo "github.com/archtoys/archtoys-tools/internal/repository/state"
)

// service encapsulates the release business logic and persistence orchestration.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// repo handles persistent storage of release state.
	repo repo.Repository
	// state is the current in-memory release state.
	state *domain.State
	// mu protects concurrent access to the release state.
	mu sync.RWMutex
}

// newService creates a service backed by the provided repository.
func newService(ctx context.Context, repository repo.Repository) (*service, error) {
	s := &service{
		repo: repository,
		state: &domain.State{
			Timestamp: time.Now(),
			Channel:   domain.DefaultChannel,
		},
	}

	if repository == nil {
		return s, nil
	}

	state, err := repository.Load(ctx)
	switch {
	case err == nil:
		if state != nil {
			s.state = state
		}
	case errors.Is(err, repo.ErrNotFound):
		// Keep default state.
	default:
		return nil, fmt.Errorf("load state: %w", err)
	}

	return s, nil
}

// PublishRelease records a new release and persists the resulting state.
func (s *service) PublishRelease(ctx context.Context, actor *domain.Actor, version, channel string) (*domain.State, error) {
	if channel == "" {
		channel = domain.DefaultChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = &domain.State{
		Timestamp:   time.Now(),
		PublishedBy: actor.Clone(),
		Version:     version,
		Channel:     channel,
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, s.state); err != nil {
			logger.Errorf(ctx, "Failed to persist release state: %v", err)

			return nil, fmt.Errorf("persist state: %w", err)
		}
	}

	logger.InfoKV(ctx, "Release published",
		"version", s.state.Version,
		"channel", s.state.Channel,
		"actor", s.state.PublishedBy)

	result := s.state.Clone()

	return result, nil
}

// GetLatestRelease returns the current release state.
func (s *service) GetLatestRelease(ctx context.Context) *domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logger.Info(ctx, "Release state requested", "version", s.state.Version, "channel", s.state.Channel)

	result := s.state.Clone()

	return result
}
