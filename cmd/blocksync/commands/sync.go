package commands

import (
	"fmt"

	"github.com/arthur-debert/blocksync/pkg/core"
	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/spf13/cobra"
)

func newSyncCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "sync [<root>...]",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			r, err := g.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			result, err := core.Synchronize(commandContext(cmd), core.SyncOptions{
				Config: cfg,
				Roots:  args,
				DryRun: g.dryRun,
				Force:  g.force,
			})

			switch {
			case result == nil:
			case err == nil || errors.IsErrorCode(err, errors.ErrConflict):
				if rerr := r.RenderSync(result); rerr != nil {
					return rerr
				}
			case len(result.Updated) > 0:
				_ = r.RenderMessage("Warning", fmt.Sprintf("%d file(s) were written before the run stopped", len(result.Updated)))
			}

			if g.dryRun && result != nil && !result.Skipped {
				_ = r.RenderMessage("Warning", MsgDryRunNotice)
			}
			return err
		},
	}
}
