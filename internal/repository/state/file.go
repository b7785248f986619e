package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/archtoys/archtoys-tools/internal/config"
	domain "github.com/archtoys/archtoys-tools/internal/domain/release"
	pb "github.com/archtoys/archtoys-tools/internal/pb/v1"
)

// Repository defines persistence operations for the release state.
type Repository interface {
	Load(ctx context.Context) (*domain.State, error)
	Save(ctx context.Context, state *domain.State) error
}

// FileRepository persists the release state to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) to stay
// compatible with the generated API types.
type FileRepository struct {
	// path is the filesystem location of the JSON state file.
	path string
	// mu protects concurrent access to the state file.
	mu sync.Mutex
}

// ErrNotFound is returned when the state file does not exist yet.
var ErrNotFound = errors.New("state not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the state from disk.
func (r *FileRepository) Load(_ context.Context) (*domain.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read state file: %w", err)
	}

	var protoState pb.ReleaseStateResponse
	if err = protojson.Unmarshal(contents, &protoState); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	return fromProto(&protoState), nil
}

// Save writes the state to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, state *domain.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		protoState     = toProto(state)
		marshalOptions = protojson.MarshalOptions{
			EmitUnpopulated: true,
		}
	)

	data, err := marshalOptions.Marshal(protoState)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// fromProto converts protobuf ReleaseStateResponse into the domain State model.
func fromProto(protoState *pb.ReleaseStateResponse) *domain.State {
	var (
		timestamp time.Time
		actor     *domain.Actor
	)

	if ts := protoState.GetTimestamp(); ts != nil {
		timestamp = ts.AsTime()
	}

	if protoActor := protoState.GetPublishedBy(); protoActor != nil {
		actor = &domain.Actor{
			Hostname: protoActor.GetHostname(),
			Username: protoActor.GetUsername(),
		}
	}

	return &domain.State{
		Timestamp:   timestamp,
		PublishedBy: actor,
		Version:     protoState.GetVersion(),
		Channel:     protoState.GetChannel(),
	}
}

// toProto converts the domain State model into protobuf ReleaseStateResponse.
func toProto(state *domain.State) *pb.ReleaseStateResponse {
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
