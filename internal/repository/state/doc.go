// Package state implements persistence for the release State.
//
// The FileRepository stores and loads the state as JSON on disk and exposes a
// Repository interface that the server service depends on.
package state
