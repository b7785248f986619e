//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/archtoys/archtoys-tools/internal/config"
	pb "github.com/archtoys/archtoys-tools/internal/pb/v1"
)

// Client wraps the gRPC ReleaseService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the release server.
	conn *grpc.ClientConn
	// api is the generated ReleaseService client interface.
	api pb.ReleaseServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
	// errVersionRequired is returned when a release version is missing.
	errVersionRequired = errors.New("version must be provided")
)

// Dial establishes a gRPC connection to the release server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial release server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewReleaseServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// GetLatestRelease retrieves the current release state.
func (c *Client) GetLatestRelease(ctx context.Context, actor *pb.SystemActor) (*pb.ReleaseStateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetLatestRelease(callCtx, &pb.GetLatestReleaseRequest{RequestingActor: actor})
	if err != nil {
		return nil, fmt.Errorf("get latest release: %w", err)
	}

	return resp, nil
}

// PublishRelease records a new release on the server.
func (c *Client) PublishRelease(
	ctx context.Context,
	actor *pb.SystemActor,
	version, channel string,
) (*pb.ReleaseStateResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	if version == "" {
		return nil, errVersionRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.PublishReleaseRequest{
		Actor:   actor,
		Version: version,
		Channel: channel,
	}

	response, err := c.api.PublishRelease(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("publish release: %w", err)
	}

	return response, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
