package cmd

import (
	"fmt"

	"github.com/salmonumbrella/mailcli/internal/update"
	"github.com/spf13/cobra"
)

func newUpdateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Check for a newer release",
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			result := update.Check(cmd.Context(), Version)
			if result == nil {
				if app.IsJSON(cmd.Context()) {
					return app.PrintJSON(cmd, map[string]any{"checked": false})
				}
				app.UI.Info("Update check skipped (dev build or check failed)")
				return nil
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"checked":   true,
					"current":   result.CurrentVersion,
					"latest":    result.LatestVersion,
					"available": result.Available,
					"url":       result.URL,
				})
			}

			if result.Available {
				app.UI.Warning(fmt.Sprintf("Update available: %s -> %s", result.CurrentVersion, result.LatestVersion))
				app.UI.Hint(result.URL)
			} else {
				app.UI.Success(fmt.Sprintf("mailcli %s is up to date", result.CurrentVersion))
			}
			return nil
		}),
	}
}
