package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the canonical copy chosen for every duplicate set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			plan, err := c.app.Plan(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if c.json {
				return writeJSON(cmd.OutOrStdout(), plan.Mapping)
			}
			writePlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
}
