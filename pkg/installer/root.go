package installer

import (
	"github.com/arthur-debert/bannerkit/pkg/errors"
	"github.com/arthur-debert/bannerkit/pkg/game"
	"github.com/arthur-debert/bannerkit/pkg/logging"
	"github.com/arthur-debert/bannerkit/pkg/paths"
	"github.com/arthur-debert/bannerkit/pkg/types"
)

// literalAnchor returns the index of the first exact "Modules" segment.
// Unlike classifier.RootAnchor this match is case-sensitive, so the entry
// that supplies the anchor can differ from the one the test saw.
func literalAnchor(entries []paths.Entry) int {
	for _, e := range entries {
		if idx := paths.IndexOf(e.Segments, game.ModulesFolder); idx != -1 {
			return idx
		}
	}
	return -1
}

// InstallRootMod copies every file that sits under a game-root folder at
// the anchor index, keeping its path from that folder onward.
// destinationPath is part of the installer contract but not needed here.
func InstallRootMod(files []string, destinationPath string) (types.InstallResult, error) {
	logger := logging.GetLogger("installer.root")

	entries := paths.NewEntries(files)
	idx := literalAnchor(entries)
	if idx == -1 {
		return types.InstallResult{}, errors.Newf(errors.ErrContract,
			"no %q folder in archive; root mod install requires an accepted archive", game.ModulesFolder).
			WithDetail("files", len(files))
	}

	instructions := make([]types.CopyInstruction, 0, len(entries))
	for _, e := range entries {
		seg, ok := e.LoweredAt(idx)
		if !ok || !game.IsRootFolder(seg) || e.IsDirectoryMarker() {
			continue
		}
		instructions = append(instructions, types.NewCopy(e.Original, paths.Join(e.Segments[idx:])))
	}

	logger.Debug().
		Int("anchor", idx).
		Int("files", len(files)).
		Int("instructions", len(instructions)).
		Str("destination", destinationPath).
		Msg("Built root mod instructions")

	return types.InstallResult{Instructions: instructions}, nil
}
