package installer

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bannerkit/pkg/classifier"
	"github.com/arthur-debert/bannerkit/pkg/game"
	"github.com/arthur-debert/bannerkit/pkg/identity"
	"github.com/arthur-debert/bannerkit/pkg/logging"
	"github.com/arthur-debert/bannerkit/pkg/paths"
	"github.com/arthur-debert/bannerkit/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// SubmoduleInstaller installs every SubModule.xml-marked unit of an archive
// into Modules/<name>.
type SubmoduleInstaller struct {
	fs          types.FS
	concurrency int
	logger      zerolog.Logger
}

// NewSubmoduleInstaller creates an installer reading identity files through
// fsys. concurrency bounds parallel name resolution; zero or less means
// unbounded.
func NewSubmoduleInstaller(fsys types.FS, concurrency int) *SubmoduleInstaller {
	return &SubmoduleInstaller{
		fs:          fsys,
		concurrency: concurrency,
		logger:      logging.GetLogger("installer.submodule"),
	}
}

// unit is one submodule: its identity file and the prefix its members share
type unit struct {
	anchor paths.Entry
	prefix string
	name   string
}

// Install builds the copy instructions for files, which were unpacked into
// destinationPath. Identity files are read relative to destinationPath when
// the name has to come from their content. Any resolution failure aborts
// the whole build and no instructions are returned.
func (s *SubmoduleInstaller) Install(files []string, destinationPath string) (types.InstallResult, error) {
	done := logging.LogOperationStart(s.logger, "install submodules")
	defer done()

	filtered := make([]paths.Entry, 0, len(files))
	for _, e := range paths.NewEntries(files) {
		if !e.IsDirectoryMarker() {
			filtered = append(filtered, e)
		}
	}

	var units []unit
	for _, e := range filtered {
		if classifier.IsIdentityFile(e) {
			units = append(units, unit{
				anchor: e,
				prefix: e.Original[:len(e.Original)-len(e.Base())],
			})
		}
	}

	if err := s.resolveNames(units, destinationPath); err != nil {
		return types.InstallResult{}, err
	}

	var instructions []types.CopyInstruction
	for _, u := range units {
		count := 0
		for _, e := range filtered {
			if !strings.HasPrefix(e.Original, u.prefix) {
				continue
			}
			dest := filepath.Join(game.ModulesFolder, u.name, e.Original[len(u.prefix):])
			instructions = append(instructions, types.NewCopy(e.Original, dest))
			count++
		}

		s.logger.Debug().
			Str("submodule", u.name).
			Str("identity", u.anchor.Original).
			Int("files", count).
			Msg("Planned submodule")
	}

	return types.InstallResult{Instructions: instructions}, nil
}

// resolveNames fills in every unit's name. Units resolve in parallel; the
// error reported is the first failure in unit order.
func (s *SubmoduleInstaller) resolveNames(units []unit, root string) error {
	resolver := identity.NewResolver(s.fs, root)
	results := make([]identity.Resolution, len(units))

	var g errgroup.Group
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			results[i] = resolver.Resolve(u.anchor)
			return nil
		})
	}
	_ = g.Wait()

	for i, res := range results {
		if res.Err != nil {
			s.logger.Warn().
				Err(res.Err).
				Str("identity", units[i].anchor.Original).
				Msg("Cannot resolve submodule name")
			return res.Err
		}
		units[i].name = res.Name
	}
	return nil
}
