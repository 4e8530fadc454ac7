package game

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/bannerkit/pkg/logging"
	"github.com/arthur-debert/bannerkit/pkg/types"
)

// LauncherSteam is the only launcher kind the game reports.
const LauncherSteam = "steam"

// Launcher describes an external launcher the game must be started through.
type Launcher struct {
	Kind string `json:"launcher" yaml:"launcher" toml:"launcher"`
}

// RequiresLauncher reports whether the installation at gamePath has to be
// started through Steam. A missing or unreadable loader means no requirement.
func RequiresLauncher(fsys types.FS, gamePath string) (Launcher, bool) {
	logger := logging.GetLogger("game.launcher")
	loader := filepath.Join(gamePath, SteamLoader)

	if _, err := fsys.Stat(loader); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Err(err).Str("path", loader).Msg("Cannot stat steam loader, assuming no launcher")
		}
		return Launcher{}, false
	}

	logger.Debug().Str("path", loader).Msg("Steam loader found")
	return Launcher{Kind: LauncherSteam}, true
}
