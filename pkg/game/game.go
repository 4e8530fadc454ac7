// Package game holds the fixed facts about Mount & Blade II: Bannerlord that
// the installers and the host registration rely on.
package game

import (
	"path/filepath"
	"strconv"
)

const (
	// ID is the game identifier hosts pass to installer tests.
	ID = "mountandblade2bannerlord"

	// Name is the display name of the game.
	Name = "Mount & Blade II: Bannerlord"

	// SteamAppID is the game's Steam application id.
	SteamAppID = 1059770

	// SteamAppIDEnv exposes SteamAppID to the game process.
	SteamAppIDEnv = "SteamAPPId"

	// ModulesFolder is the anchor folder of root mods and the destination
	// prefix of submodules.
	ModulesFolder = "Modules"

	// IdentityFile is the lowered basename of the file marking a submodule.
	// Mods ship it as "SubModule.xml".
	IdentityFile = "submodule.xml"

	// SteamLoader is present in the game root of Steam installs.
	SteamLoader = "steam_api64.dll"

	// Logo is the artwork file shipped with the registration.
	Logo = "gameart.jpg"
)

// rootFolders are the lowered folder names found alongside the game's
// Modules folder.
var rootFolders = map[string]struct{}{
	"bin":        {},
	"data":       {},
	"gui":        {},
	"icons":      {},
	"modules":    {},
	"music":      {},
	"shaders":    {},
	"sounds":     {},
	"xmlschemas": {},
}

// IsRootFolder reports whether a lowered segment names a game-root folder.
func IsRootFolder(lowered string) bool {
	_, ok := rootFolders[lowered]
	return ok
}

// Executable returns the launcher executable relative to the game root.
func Executable() string {
	return filepath.Join("bin", "Win64_Shipping_Client", "TaleWorlds.MountAndBlade.Launcher.exe")
}

// Details carries host-specific extras of the registration.
type Details struct {
	SteamAppID         int    `json:"steamAppId" yaml:"steamAppId" toml:"steamAppId"`
	CustomOpenModsPath string `json:"customOpenModsPath" yaml:"customOpenModsPath" toml:"customOpenModsPath"`
}

// Registration is the metadata a host needs to register the game.
type Registration struct {
	ID            string            `json:"id" yaml:"id" toml:"id"`
	Name          string            `json:"name" yaml:"name" toml:"name"`
	MergeMods     bool              `json:"mergeMods" yaml:"mergeMods" toml:"mergeMods"`
	ModPath       string            `json:"modPath" yaml:"modPath" toml:"modPath"`
	Logo          string            `json:"logo" yaml:"logo" toml:"logo"`
	Executable    string            `json:"executable" yaml:"executable" toml:"executable"`
	RequiredFiles []string          `json:"requiredFiles" yaml:"requiredFiles" toml:"requiredFiles"`
	Environment   map[string]string `json:"environment" yaml:"environment" toml:"environment"`
	Details       Details           `json:"details" yaml:"details" toml:"details"`
}

// Describe returns the game registration. Mods deploy into the game root,
// so ModPath is ".".
func Describe() Registration {
	exe := Executable()
	return Registration{
		ID:            ID,
		Name:          Name,
		MergeMods:     true,
		ModPath:       ".",
		Logo:          Logo,
		Executable:    exe,
		RequiredFiles: []string{exe},
		Environment: map[string]string{
			SteamAppIDEnv: strconv.Itoa(SteamAppID),
		},
		Details: Details{
			SteamAppID:         SteamAppID,
			CustomOpenModsPath: ModulesFolder,
		},
	}
}
