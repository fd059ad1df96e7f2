package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List the duplicate package sets of the install",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			sets, err := c.app.Scan(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if c.json {
				return writeJSON(cmd.OutOrStdout(), sets)
			}
			writeSets(cmd.OutOrStdout(), sets)
			return nil
		},
	}
}
