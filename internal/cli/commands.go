package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthur-debert/bannerkit/internal/version"
	"github.com/arthur-debert/bannerkit/pkg/archive"
	"github.com/arthur-debert/bannerkit/pkg/deployment"
	"github.com/arthur-debert/bannerkit/pkg/errors"
	"github.com/arthur-debert/bannerkit/pkg/filesystem"
	"github.com/arthur-debert/bannerkit/pkg/game"
	"github.com/arthur-debert/bannerkit/pkg/installers"
	"github.com/arthur-debert/bannerkit/pkg/logging"
	"github.com/arthur-debert/bannerkit/pkg/notifier"
	"github.com/arthur-debert/bannerkit/pkg/output"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newGameCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "game",
		Short: MsgGameShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.Registration(cmd.OutOrStdout(), opts.outputFormat(cmd), game.Describe())
		},
	}
}

// filesFlag is the --files-from value shared by test and plan
type filesFlag struct {
	from string
}

func (f *filesFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "files-from", "", "Read archive paths from a file, or - for stdin")
}

// load returns the archive listing from the directory argument or from
// --files-from.
func (f *filesFlag) load(cmd *cobra.Command, args []string) ([]string, error) {
	logger := logging.GetLogger("cli.files")

	var (
		files  []string
		err    error
		source string
	)
	switch {
	case f.from == "-":
		source = "stdin"
		files, err = archive.ReadList(cmd.InOrStdin())
	case f.from != "":
		source = f.from
		fh, openErr := os.Open(f.from)
		if openErr != nil {
			return nil, errors.Wrapf(openErr, errors.ErrFileAccess, "cannot open %s", f.from).
				WithDetail("path", f.from)
		}
		defer fh.Close() //nolint:errcheck
		files, err = archive.ReadList(fh)
	case len(args) == 1:
		source = args[0]
		files, err = archive.List(afero.NewOsFs(), args[0])
	default:
		return nil, errors.New(errors.ErrInvalidInput, MsgFilesSourceMissing)
	}
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, MsgNoFilesFormat, source)
	}

	logger.Debug().Str("source", source).Int("files", len(files)).Msg("Loaded archive listing")
	return files, nil
}

func (o *options) dispatcher() *installers.Dispatcher {
	return installers.NewDispatcher(installers.Default(filesystem.NewOS(), o.cfg.Install.Concurrency))
}

func newTestCmd(opts *options) *cobra.Command {
	var files filesFlag

	cmd := &cobra.Command{
		Use:   "test [archive-dir]",
		Short: MsgTestShort,
		Long:  MsgTestShort + ".\n\n" + MsgFilesHelp,
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Test an extracted archive
  bannerkit test ./MyMod

  # Test a listing produced by an archive tool
  7z l -slt MyMod.7z | grep '^Path = ' | cut -c8- | bannerkit test --files-from -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := files.load(cmd, args)
			if err != nil {
				return err
			}
			verdicts := opts.dispatcher().Test(list, opts.cfg.Game.ID)
			return output.Verdicts(cmd.OutOrStdout(), opts.outputFormat(cmd), verdicts)
		},
	}
	files.register(cmd)
	return cmd
}

func newPlanCmd(opts *options) *cobra.Command {
	var (
		files       filesFlag
		destination string
	)

	cmd := &cobra.Command{
		Use:   "plan [archive-dir]",
		Short: MsgPlanShort,
		Long: MsgPlanShort + ".\n\n" + MsgFilesHelp + `

SubModule.xml files are read from the staging directory, which defaults to
the archive directory itself.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  # Plan an extracted archive as JSON
  bannerkit plan ./MyMod --format json

  # Plan a listing whose files were staged elsewhere
  bannerkit plan --files-from files.txt --destination /tmp/staging/MyMod`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := files.load(cmd, args)
			if err != nil {
				return err
			}

			stage := destination
			if stage == "" && len(args) == 1 {
				stage = args[0]
			}
			if stage == "" {
				stage = "."
			}

			plan, err := opts.dispatcher().Plan(list, opts.cfg.Game.ID, stage)
			if err != nil {
				return err
			}
			return output.Plan(cmd.OutOrStdout(), opts.outputFormat(cmd), plan)
		},
	}
	files.register(cmd)
	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Staging directory the archive was extracted to")
	return cmd
}

func newLauncherCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "launcher <game-dir>",
		Short: MsgLauncherShort,
		Long: MsgLauncherShort + `.

A Steam install is recognised by steam_api64.dll in the game directory.
Such installs must be started through Steam.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			launcher, _ := game.RequiresLauncher(filesystem.NewOS(), args[0])
			return output.Launcher(cmd.OutOrStdout(), opts.outputFormat(cmd), launcher)
		},
	}
}

func newWatchCmd(opts *options) *cobra.Command {
	var (
		profile  string
		suppress bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <manifest>",
		Short: MsgWatchShort,
		Long: MsgWatchShort + `.

The manifest is the file a deployment tool rewrites after every deployment.
Each time its content changes for a profile that manages the game, a
reminder to activate mods in the game launcher is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.watch")
			cfg := opts.cfg

			if _, ok := cfg.GameForProfile(profile); !ok {
				logger.Warn().Str("profile", profile).Str("game", cfg.Game.ID).Msg(MsgUnmappedProfile)
				if cfg.Profiles == nil {
					cfg.Profiles = map[string]string{}
				}
				cfg.Profiles[profile] = cfg.Game.ID
			}

			format := opts.outputFormat(cmd)
			sender := notifier.SenderFunc(func(n notifier.Notification) error {
				if suppress && n.AllowSuppress {
					logger.Info().Str("id", n.ID).Msg(MsgSuppressed)
					return nil
				}
				return output.Notification(cmd.OutOrStdout(), format, n)
			})
			notes := notifier.New[string](cfg, sender, cfg.Notify.Message)

			if debounce <= 0 {
				debounce = cfg.Watch.Debounce
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return deployment.NewWatcher(args[0], profile, notes, debounce).Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Profile the manifest belongs to")
	cmd.Flags().BoolVar(&suppress, "suppress", false, "Log notifications instead of printing them")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "Quiet period before a manifest change counts (default from config)")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}
