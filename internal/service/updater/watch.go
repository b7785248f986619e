package updater

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/archtoys/archtoys-tools/internal/config"
	"github.com/archtoys/archtoys-tools/internal/logger"
	pb "github.com/archtoys/archtoys-tools/internal/pb/v1"
	"github.com/archtoys/archtoys-tools/internal/service/common"
)

// DefaultPollInterval is how often the watcher asks the release server for
// the latest published release.
const DefaultPollInterval = 5 * time.Minute

// WatchOptions are inputs accepted by the watching entry point.
type WatchOptions struct {
	Options

	// PollInterval defines the interval between release checks.
	PollInterval time.Duration
}

// Watch polls the release server and runs a one-shot update whenever the
// published version differs from the installed one. It returns when the
// context is canceled.
func Watch(ctx context.Context, opts *WatchOptions) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "archtoys-updater")

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigFilename
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	role := strings.TrimSpace(opts.UpdateType)

	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	// Detect current system actor for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	client, err := common.Dial(ctx, cfg.ServerAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Watching for new releases",
		"server_address", cfg.ServerAddress,
		"role", role,
		"interval", opts.PollInterval.String())

	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	// Main polling loop until context cancellation.
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			if err = checkRelease(ctx, client, actor, role, &opts.Options); err != nil {
				logger.ErrorKV(ctx, "Release check failed", "error", err)
			}
		}
	}
}

// checkRelease compares the published version against the installed one and
// triggers a one-shot update when they differ.
func checkRelease(
	ctx context.Context,
	client *common.Client,
	actor *pb.SystemActor,
	role string,
	opts *Options,
) error {
	state, err := client.GetLatestRelease(ctx, actor)
	if err != nil {
		return err
	}

	remoteVersion := state.GetVersion()

	timestamp := time.Now().Format(time.RFC3339)
	if ts := state.GetTimestamp(); ts != nil {
		timestamp = ts.AsTime().Format(time.RFC3339)
	}

	logger.Infof(ctx, "Latest release: %s (%s) at %s", remoteVersion, state.GetChannel(), timestamp)

	// Nothing published yet.
	if remoteVersion == "" {
		return nil
	}

	localVersion, err := probeLocalVersion(ctx, role)
	if err != nil {
		return err
	}

	if localVersion == remoteVersion {
		return nil
	}

	logger.InfoKV(ctx, "New release published, updating",
		"local", localVersion, "remote", remoteVersion)

	return Run(ctx, opts)
}
