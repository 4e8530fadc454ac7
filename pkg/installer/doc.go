// Package installer turns an accepted archive listing into copy
// instructions.
//
// There are two builders, one per install shape:
//
//   - InstallRootMod for archives laid out like the game directory. Files
//     under a recognised game-root folder are copied with their path from
//     that folder onward.
//   - SubmoduleInstaller for archives holding one or more SubModule.xml
//     units. Each unit lands in Modules/<name>.
//
// Builders expect the matching classifier test to have accepted the
// listing first. Instructions are declarative; copying is left to the host.
package installer
