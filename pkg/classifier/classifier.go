// Package classifier decides which install shape an archive listing has.
// Both tests are pure functions of the listing and never fail: anything
// unexpected degrades to "not supported".
package classifier

import (
	"strings"

	"github.com/arthur-debert/bannerkit/pkg/game"
	"github.com/arthur-debert/bannerkit/pkg/paths"
	"github.com/arthur-debert/bannerkit/pkg/types"
)

// RootAnchor returns the index of the Modules segment in the first entry
// that has one, matching case-insensitively. It returns -1 when no entry
// has a Modules segment.
func RootAnchor(entries []paths.Entry) int {
	want := strings.ToLower(game.ModulesFolder)
	for _, e := range entries {
		if idx := paths.IndexOf(e.LoweredSegments, want); idx != -1 {
			return idx
		}
	}
	return -1
}

// TestRootMod reports whether files mirror the game's own directory tree:
// some entry must hold a game-root folder at the anchor index and continue
// past it.
func TestRootMod(files []string, gameID string) types.TestResult {
	if gameID != game.ID {
		return types.NotSupported()
	}

	entries := paths.NewEntries(files)
	idx := RootAnchor(entries)
	if idx == -1 {
		return types.NotSupported()
	}

	for _, e := range entries {
		seg, ok := e.LoweredAt(idx)
		if ok && len(e.LoweredSegments)-1 > idx && game.IsRootFolder(seg) {
			return types.Supported(true)
		}
	}
	return types.NotSupported()
}

// TestSubmodules reports whether files contain at least one SubModule.xml.
func TestSubmodules(files []string, gameID string) types.TestResult {
	if gameID != game.ID {
		return types.NotSupported()
	}

	for _, f := range files {
		if IsIdentityFile(paths.NewEntry(f)) {
			return types.Supported(true)
		}
	}
	return types.NotSupported()
}

// IsIdentityFile reports whether the entry's basename is SubModule.xml in
// any casing.
func IsIdentityFile(e paths.Entry) bool {
	return e.LoweredBase() == game.IdentityFile
}
