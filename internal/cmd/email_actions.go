package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEmailDeleteCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an email",
		Args:  cobra.ExactArgs(1),
		Example: `  mailcli email delete 4821
  mailcli email delete 4821 --force`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			id := args[0]
			ok, err := app.Confirm(cmd, force, fmt.Sprintf("Delete email %s? Type 'yes' to confirm: ", id))
			if err != nil {
				return err
			}
			if !ok {
				app.UI.Info("Cancelled")
				return nil
			}

			mailer, err := app.Mailer()
			if err != nil {
				return err
			}
			if err := mailer.Delete(id); err != nil {
				return fmt.Errorf("failed to delete email: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{"deleted": true, "id": id})
			}
			app.UI.Success(fmt.Sprintf("Deleted email %s", id))
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}

func newEmailBulkDeleteCmd(app *App) *cobra.Command {
	var force, dryRun bool

	cmd := &cobra.Command{
		Use:   "bulk-delete <id>...",
		Short: "Delete several emails at once",
		Args:  cobra.MinimumNArgs(1),
		Example: `  mailcli email bulk-delete 4821 4822 4823
  mailcli email bulk-delete 4821 4822 --dry-run`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			if dryRun {
				if app.IsJSON(cmd.Context()) {
					return app.PrintJSON(cmd, map[string]any{"dryRun": true, "ids": args})
				}
				fmt.Printf("Would delete %d emails:\n", len(args))
				for _, id := range args {
					fmt.Printf("  %s\n", id)
				}
				return nil
			}

			prompt := fmt.Sprintf("Delete %d emails? Type 'yes' to confirm: ", len(args))
			ok, err := app.Confirm(cmd, force, prompt)
			if err != nil {
				return err
			}
			if !ok {
				app.UI.Info("Cancelled")
				return nil
			}

			mailer, err := app.Mailer()
			if err != nil {
				return err
			}
			result, err := mailer.DeleteBatch(args)
			if err != nil {
				return fmt.Errorf("failed to delete emails: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, result)
			}
			printBulkResults("Deleted", "emails", result)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List what would be deleted without deleting")
	return cmd
}

func newEmailMarkReadCmd(app *App) *cobra.Command {
	return newMarkCmd(app, "mark-read", "Mark an email as read", true)
}

func newEmailMarkUnreadCmd(app *App) *cobra.Command {
	return newMarkCmd(app, "mark-unread", "Mark an email as unread", false)
}

func newMarkCmd(app *App, use, short string, seen bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			mailer, err := app.Mailer()
			if err != nil {
				return err
			}
			if err := mailer.MarkRead(args[0], seen); err != nil {
				return fmt.Errorf("failed to update flags: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{"id": args[0], "seen": seen})
			}
			state := "read"
			if !seen {
				state = "unread"
			}
			app.UI.Success(fmt.Sprintf("Marked email %s as %s", args[0], state))
			return nil
		}),
	}
}
