package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/dedup/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [requests...]",
		Short: "Resolve requests through the rewrite engine and update the lock",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrNoRequests
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			from, _ := cmd.Flags().GetString("from")
			if from == "" {
				from = cfg.Root
			} else if !filepath.IsAbs(from) {
				from = filepath.Join(cfg.Root, from)
			}

			requests := make([]domain.ResolveData, len(args))
			for i, arg := range args {
				requests[i] = domain.ResolveData{Request: arg, Context: from}
			}

			report, err := c.app.Resolve(cmd.Context(), cfg, requests)
			if err != nil {
				return err
			}

			if c.json {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			writeReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().String("from", "", "Directory the requests are resolved from (default: project root)")
	return cmd
}
