package release

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/archtoys/archtoys-tools/internal/domain/release"
	pb "github.com/archtoys/archtoys-tools/internal/pb/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	PublishRelease(ctx context.Context, actor *domain.Actor, version, channel string) (*domain.State, error)
	GetLatestRelease(ctx context.Context) *domain.State
}

// Server implements the ReleaseService gRPC API.
type Server struct {
	pb.UnimplementedReleaseServiceServer

	// service provides the business logic for release operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// PublishRelease records a new release and persists the resulting state.
func (s *Server) PublishRelease(ctx context.Context, req *pb.PublishReleaseRequest) (*pb.ReleaseStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	if req.GetVersion() == "" {
		return nil, status.Error(codes.InvalidArgument, "version is required")
	}

	actor := toDomainActor(req.GetActor())

	state, err := s.service.PublishRelease(ctx, actor, req.GetVersion(), req.GetChannel())
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to persist state")
	}

	return toProtoState(state), nil
}

// GetLatestRelease returns the current release state.
func (s *Server) GetLatestRelease(ctx context.Context, _ *pb.GetLatestReleaseRequest) (*pb.ReleaseStateResponse, error) {
	state := s.service.GetLatestRelease(ctx)

	return toProtoState(state), nil
}

// toDomainActor converts a protobuf SystemActor to a domain Actor.
func toDomainActor(actor *pb.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// toProtoState converts a domain.State object to a pb.ReleaseStateResponse protobuf message.
func toProtoState(state *domain.State) *pb.ReleaseStateResponse {
	if state == nil {
		return &pb.ReleaseStateResponse{}
	}

	var timestamp *timestamppb.Timestamp
	if !state.Timestamp.IsZero() {
		timestamp = timestamppb.New(state.Timestamp)
	}

	var actor *pb.SystemActor
	if state.PublishedBy != nil {
		actor = &pb.SystemActor{
			Hostname: state.PublishedBy.Hostname,
			Username: state.PublishedBy.Username,
		}
	}

	return &pb.ReleaseStateResponse{
		Timestamp:   timestamp,
		PublishedBy: actor,
		Version:     state.Version,
		Channel:     state.Channel,
	}
}
