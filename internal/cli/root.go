// Package cli wires bannerkit's packages into the bannerkit command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/bannerkit/internal/version"
	"github.com/arthur-debert/bannerkit/pkg/config"
	"github.com/arthur-debert/bannerkit/pkg/errors"
	"github.com/arthur-debert/bannerkit/pkg/logging"
	"github.com/arthur-debert/bannerkit/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options holds the global flags and the configuration they resolve to
type options struct {
	verbosity  int
	configPath string
	format     string
	gameID     string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "bannerkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return opts.load()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/bannerkit/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "Output format: auto, term, text, json, yaml or toml")
	rootCmd.PersistentFlags().StringVar(&opts.gameID, "game", "", "Game id the archive is installed for")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGameCmd(opts))
	rootCmd.AddCommand(newTestCmd(opts))
	rootCmd.AddCommand(newPlanCmd(opts))
	rootCmd.AddCommand(newLauncherCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))

	return rootCmd
}

// load reads the configuration and applies the global flag overrides
func (o *options) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.gameID != "" {
		cfg.Game.ID = o.gameID
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if _, err := output.ParseFormat(cfg.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid output format").
			WithDetail("format", cfg.Output.Format)
	}
	o.cfg = cfg
	return nil
}

// outputFormat resolves the configured format for the command's output.
// Writers that are not files never get terminal styling.
func (o *options) outputFormat(cmd *cobra.Command) output.Format {
	f, _ := output.ParseFormat(o.cfg.Output.Format)
	if f != output.FormatAuto {
		return f
	}
	if file, ok := cmd.OutOrStdout().(*os.File); ok {
		return output.DetectFormat(file)
	}
	return output.FormatText
}

// ReportError prints err and, for coded errors, its details.
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	kitErr, ok := errors.As(err)
	if !ok {
		return
	}
	for _, k := range kitErr.DetailKeys() {
		fmt.Fprintf(w, "  %s: %v\n", k, kitErr.Details[k])
	}
}
