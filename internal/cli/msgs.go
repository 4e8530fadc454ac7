package cli

// Short messages (one-liners)
const (
	MsgRootShort     = "Plan Mount & Blade II: Bannerlord mod installs"
	MsgTestShort     = "Report which installers support an archive"
	MsgPlanShort     = "Print the copy instructions for an archive"
	MsgLauncherShort = "Check whether the game needs the Steam launcher"
	MsgGameShort     = "Show the game registration"
	MsgWatchShort    = "Notify when a profile's deployment changes"
	MsgVersionShort  = "Print version information"
)

// Long messages
const (
	MsgRootLong = `bannerkit classifies extracted mod archives for Mount & Blade II: Bannerlord
and turns them into copy instructions relative to the game directory.

It never copies files itself. The plan it prints is meant for a mod manager
or a deployment script.`

	MsgFilesHelp = `The archive is either a directory of extracted files or, with
--files-from, a newline separated list of archive-relative paths. Paths
ending in a separator denote directories.`
)

// Status messages
const (
	MsgNoFilesFormat      = "no files found in %s"
	MsgFilesSourceMissing = "an archive directory or --files-from is required"
	MsgVersionFormat      = "bannerkit version %s\n"
	MsgCommitFormat       = "  commit: %s\n"
	MsgBuiltFormat        = "  built:  %s\n"
	MsgSuppressed         = "notification suppressed"
	MsgUnmappedProfile    = "profile is not mapped to a game, assuming the configured game"
)
