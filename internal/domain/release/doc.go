// Package release contains core domain types for release tracking.
//
// It defines Actor (who published a release) and State (the latest release
// at a point in time) with Clone helpers to avoid leaking internal
// references.
package release
