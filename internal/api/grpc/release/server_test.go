package release

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/archtoys/archtoys-tools/internal/domain/release"
	pb "github.com/archtoys/archtoys-tools/internal/pb/v1"
)

// fakeService implements the release Service interface for unit testing the transport.
type fakeService struct {
	// publishFn lets a test override the publish behavior.
	publishFn func(ctx context.Context, actor *domain.Actor, version, channel string) (*domain.State, error)

	// state holds the current release state managed by the fake service.
	state *domain.State
}

// PublishRelease records the release in the fake service. If a custom publish
// function (publishFn) is provided, it delegates the operation to it.
func (f *fakeService) PublishRelease(ctx context.Context, actor *domain.Actor, version, channel string) (*domain.State, error) {
	if f.publishFn != nil {
		return f.publishFn(ctx, actor, version, channel)
	}

	f.state = &domain.State{
		Timestamp:   time.Now(),
		PublishedBy: actor,
		Version:     version,
		Channel:     channel,
	}

	return f.state, nil
}

// GetLatestRelease returns the current release state stored in the fake service.
func (f *fakeService) GetLatestRelease(context.Context) *domain.State { return f.state }

// TestServer_PublishRelease_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_PublishRelease_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))

	_, err := s.PublishRelease(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	request := &pb.PublishReleaseRequest{Actor: nil}

	_, err = s.PublishRelease(context.Background(), request)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// Actor present but version missing.
	request = &pb.PublishReleaseRequest{
		Actor: &pb.SystemActor{Hostname: "host", Username: "user"},
	}

	_, err = s.PublishRelease(context.Background(), request)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_Roundtrip exercises PublishRelease and GetLatestRelease end-to-end on the server implementation.
func TestServer_Roundtrip(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		// Create server with fake service for isolated testing.
		s := NewServer(new(fakeService))

		// Create test request with actor information.
		request := &pb.PublishReleaseRequest{
			Actor: &pb.SystemActor{
				Hostname: "test-hostname",
				Username: "test-user",
			},
			Version: "0.9.4",
			Channel: "stable",
		}

		// Publish a release and verify no error.
		_, err := s.PublishRelease(context.Background(), request)
		require.NoError(t, err)

		// Wait for all async operations to complete.
		synctest.Wait()

		// Fetch the latest release and verify it was persisted correctly.
		response, err := s.GetLatestRelease(context.Background(), new(pb.GetLatestReleaseRequest))

		require.NoError(t, err)
		require.Equal(t, "0.9.4", response.GetVersion())
		require.Equal(t, "stable", response.GetChannel())
		require.NotNil(t, response.GetPublishedBy())
		require.Equal(t, "test-hostname", response.GetPublishedBy().GetHostname())
		require.Equal(t, "test-user", response.GetPublishedBy().GetUsername())
	})
}
