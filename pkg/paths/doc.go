// Package paths provides the path model shared by the classifiers and the
// installers, plus the application directories used by bannerkit itself.
//
// # Path entries
//
// Archive listings are flat lists of relative paths split on the platform
// separator. Folder names are matched case-insensitively but destinations
// must keep the casing the mod author used, so every path is carried as an
// Entry holding both views:
//
//   - Original / Segments: the path exactly as listed
//   - Lowered / LoweredSegments: the matching key
//
// Entries whose final segment has no extension are directory markers.
//
// # Environment Variables
//
//   - BANNERKIT_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/bannerkit)
//   - BANNERKIT_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/bannerkit)
package paths
