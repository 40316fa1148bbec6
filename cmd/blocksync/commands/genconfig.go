package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/blocksync/pkg/config"
	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(g *globals) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			content, err := config.GenerateConfigContent(cfg)
			if err != nil {
				return err
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := filepath.Join(".", config.ProjectFiles[0])
			if _, err := os.Stat(path); err == nil && !g.force {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExist, path)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path)
			}

			r, err := g.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderMessage("Success", fmt.Sprintf(MsgConfigWritten, path))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
