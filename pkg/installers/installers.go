// Package installers registers the Bannerlord installers and dispatches an
// archive to the first one that supports it.
package installers

import (
	"github.com/arthur-debert/bannerkit/pkg/classifier"
	"github.com/arthur-debert/bannerkit/pkg/errors"
	"github.com/arthur-debert/bannerkit/pkg/installer"
	"github.com/arthur-debert/bannerkit/pkg/logging"
	"github.com/arthur-debert/bannerkit/pkg/registry"
	"github.com/arthur-debert/bannerkit/pkg/types"
	"github.com/rs/zerolog"
)

// Installer names and priorities. Lower priorities are tried first.
const (
	RootModName        = "bannerlordrootmod"
	RootModPriority    = 20
	SubmodulesName     = "bannerlordsubmodules"
	SubmodulesPriority = 25
)

// Installer pairs a shape test with the builder for that shape.
type Installer struct {
	Name     string
	Priority int
	Test     types.TestFunc
	Install  types.InstallFunc
}

// Key implements registry.Ranked
func (i Installer) Key() string { return i.Name }

// Rank implements registry.Ranked
func (i Installer) Rank() int { return i.Priority }

// Default returns a registry holding the root mod and submodule
// installers. Identity files are read through fsys.
func Default(fsys types.FS, concurrency int) *registry.Registry[Installer] {
	reg := registry.New[Installer]()
	registry.MustRegister(reg, Installer{
		Name:     RootModName,
		Priority: RootModPriority,
		Test:     classifier.TestRootMod,
		Install:  installer.InstallRootMod,
	})
	registry.MustRegister(reg, Installer{
		Name:     SubmodulesName,
		Priority: SubmodulesPriority,
		Test:     classifier.TestSubmodules,
		Install:  installer.NewSubmoduleInstaller(fsys, concurrency).Install,
	})
	return reg
}

// Verdict is one installer's answer for an archive
type Verdict struct {
	Installer string           `json:"installer" yaml:"installer" toml:"installer"`
	Priority  int              `json:"priority" yaml:"priority" toml:"priority"`
	Result    types.TestResult `json:"result" yaml:"result" toml:"result"`
}

// Plan is the deployment plan chosen for an archive
type Plan struct {
	Installer    string                  `json:"installer" yaml:"installer" toml:"installer"`
	Instructions []types.CopyInstruction `json:"instructions" yaml:"instructions" toml:"instructions"`
}

// Dispatcher routes archives to registered installers by priority
type Dispatcher struct {
	reg    *registry.Registry[Installer]
	logger zerolog.Logger
}

// NewDispatcher creates a Dispatcher over reg
func NewDispatcher(reg *registry.Registry[Installer]) *Dispatcher {
	return &Dispatcher{
		reg:    reg,
		logger: logging.GetLogger("installers"),
	}
}

// Ordered returns the registered installers by ascending priority, ties
// broken by name.
func (d *Dispatcher) Ordered() []Installer {
	return d.reg.Ordered()
}

// Test runs every installer's test against files.
func (d *Dispatcher) Test(files []string, gameID string) []Verdict {
	ordered := d.Ordered()
	verdicts := make([]Verdict, 0, len(ordered))
	for _, inst := range ordered {
		verdicts = append(verdicts, Verdict{
			Installer: inst.Name,
			Priority:  inst.Priority,
			Result:    inst.Test(files, gameID),
		})
	}
	return verdicts
}

// Plan builds the instructions with the first installer that supports
// files. Build errors, including errors.ErrDataInvalid, are returned as-is.
func (d *Dispatcher) Plan(files []string, gameID, destinationPath string) (Plan, error) {
	for _, inst := range d.Ordered() {
		if !inst.Test(files, gameID).Supported {
			d.logger.Trace().Str("installer", inst.Name).Msg("Installer does not support archive")
			continue
		}

		d.logger.Info().
			Str("installer", inst.Name).
			Int("files", len(files)).
			Msg("Installing archive")

		result, err := inst.Install(files, destinationPath)
		if err != nil {
			return Plan{}, err
		}
		return Plan{Installer: inst.Name, Instructions: result.Instructions}, nil
	}

	return Plan{}, errors.New(errors.ErrNotFound, "no installer supports this archive").
		WithDetail("game", gameID).
		WithDetail("files", len(files))
}
