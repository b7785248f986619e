package appimage

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/archtoys/archtoys-tools/internal/logger"
)

// Tool names one external bundling tool and where to fetch it from.
type Tool struct {
	Name string
	URL  string
}

// The two bundling tools, pinned to their upstream continuous builds.
var (
	LinuxDeploy = Tool{
		Name: "linuxdeploy-x86_64.AppImage",
		URL:  "https://github.com/linuxdeploy/linuxdeploy/releases/download/continuous/linuxdeploy-x86_64.AppImage",
	}

	AppImageTool = Tool{
		Name: "appimagetool-x86_64.AppImage",
		URL:  "https://github.com/AppImage/AppImageKit/releases/download/continuous/appimagetool-x86_64.AppImage",
	}
)

// EnsureTool returns the cached path of the tool, downloading it into
// cacheDir on first use. Downloads land under a temporary name and are
// renamed into place only once complete.
func EnsureTool(ctx context.Context, cacheDir string, tool Tool) (string, error) {
	target := filepath.Join(cacheDir, tool.Name)

	if _, err := os.Stat(target); err == nil {
		logger.DebugKV(ctx, "Using cached tool", "path", target)

		return target, nil
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create tool cache: %w", err)
	}

	logger.InfoKV(ctx, "Downloading bundling tool", "name", tool.Name, "url", tool.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tool.URL, http.NoBody)
	if err != nil {
		return "", err
	}

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", tool.Name, err)
	}

	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %s", tool.Name, response.Status)
	}

	partial := target + ".partial"

	outputFile, err := os.OpenFile(filepath.Clean(partial), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return "", err
	}

	digest := sha512.New()

	_, err = io.Copy(io.MultiWriter(outputFile, digest), response.Body)
	if err != nil {
		_ = outputFile.Close()
		_ = os.Remove(partial)

		return "", fmt.Errorf("download %s: %w", tool.Name, err)
	}

	if err = outputFile.Close(); err != nil {
		_ = os.Remove(partial)

		return "", err
	}

	if err = os.Rename(partial, target); err != nil {
		return "", err
	}

	logger.InfoKV(ctx, "Downloaded bundling tool",
		"path", target,
		"sha512", hex.EncodeToString(digest.Sum(nil)))

	return target, nil
}
