// Package bundler produces the portable AppImage artifact.
//
// It assembles the AppDir from the application build output, fetches the
// external bundling tools into a per-user cache, and runs them to emit the
// final AppImage.
package bundler
