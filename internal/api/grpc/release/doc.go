// Package release implements the gRPC transport for the release service.
//
// It adapts domain types to protobuf messages and exposes a server that calls
// into a provided business-service interface.
package release
