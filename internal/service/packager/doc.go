// Package packager prepares a release for distribution.
//
// It stages the distro install layout, computes checksums for the update
// artifacts, wires role-to-files mappings into the update manifest, persists
// connection settings, and records the release on the release server. The
// resulting YAML is uploaded to the update folder served to clients.
package packager
