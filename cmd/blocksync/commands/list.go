package commands

import (
	"github.com/arthur-debert/blocksync/pkg/core"
	"github.com/spf13/cobra"
)

func newListCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "list [<root>...]",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			listing, err := core.ListBlocks(core.ListOptions{Config: cfg, Roots: args})
			if err != nil {
				return err
			}

			r, err := g.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderListing(listing)
		},
	}
}
