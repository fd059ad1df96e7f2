package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dedup/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rescan whenever the lockfile or patches change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			var writeErr error
			err = c.app.Watch(cmd.Context(), cfg, func(sets domain.DuplicateSets) {
				if c.json {
					if err := writeJSON(cmd.OutOrStdout(), sets); err != nil && writeErr == nil {
						writeErr = err
					}
					return
				}
				writeSets(cmd.OutOrStdout(), sets)
			})
			if err != nil {
				return err
			}
			return writeErr
		},
	}
}
