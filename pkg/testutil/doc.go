// Package testutil provides utilities for testing bannerkit components.
//
// Key components:
//   - StagedFS: In-memory staging directory implementing types.FS, with
//     error injection and read statistics
//   - Path: Platform-native path joining for fixtures
//
// Usage guidelines:
//   - Unit tests should stage archive content in a StagedFS rather than on disk
//   - All test data should be defined inline, not in external files
package testutil
