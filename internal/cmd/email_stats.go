package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEmailStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show inbox statistics",
		Example: `  mailcli email stats
  mailcli email stats --output=json --query '.unseen'`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			mailer, err := app.Mailer()
			if err != nil {
				return err
			}

			stats, err := mailer.Statistics()
			if err != nil {
				return fmt.Errorf("failed to get statistics: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, stats)
			}

			tw := newTabWriter()
			fmt.Fprintln(tw, "TOTAL\tUNSEEN\tFLAGGED\tTODAY")
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", stats.Total, stats.Unseen, stats.Flagged, stats.Today)
			tw.Flush()
			return nil
		}),
	}
	return cmd
}
