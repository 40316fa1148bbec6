// Package commands implements the blocksync command line.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/blocksync/internal/version"
	"github.com/arthur-debert/blocksync/pkg/config"
	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/logging"
	"github.com/arthur-debert/blocksync/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globals holds the persistent flags shared by every subcommand
type globals struct {
	verbosity  int
	dryRun     bool
	force      bool
	noColor    bool
	configFile string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "blocksync",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommandGiven)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&g.force, "force", false, MsgFlagForce)
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVarP(&g.configFile, "config", "c", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newSyncCmd(g))
	rootCmd.AddCommand(newListCmd(g))
	rootCmd.AddCommand(newGenConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func (g *globals) loadConfig() (*config.Config, error) {
	return config.Load(config.LoadOptions{File: g.configFile})
}

func (g *globals) renderer(w io.Writer) (*output.Renderer, error) {
	r, err := output.NewRenderer(w, g.noColor)
	if err != nil {
		return nil, fmt.Errorf(MsgErrRenderer, err)
	}
	return r, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// ReportError writes err to w the way the CLI presents failures
func ReportError(w io.Writer, err error) {
	r, rerr := output.NewRenderer(w, false)
	if rerr != nil {
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	_ = r.RenderError(err)
}

// Exit codes
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitConflict   = 2
	ExitStructural = 3
)

// ExitCode maps an error returned by a command to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsErrorCode(err, errors.ErrConflict):
		return ExitConflict
	case errors.IsStructural(err):
		return ExitStructural
	default:
		return ExitFailure
	}
}
