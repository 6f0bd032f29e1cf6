package cmd

import (
	"fmt"

	"github.com/salmonumbrella/mailcli/internal/dateparse"
	"github.com/spf13/cobra"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft and schedule emails",
	}
	cmd.AddCommand(newDraftCreateCmd(app))
	cmd.AddCommand(newDraftScheduleCmd(app))
	return cmd
}

func newDraftCreateCmd(app *App) *cobra.Command {
	var to []string
	var subject, body string

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Validate a draft email",
		Example: `  mailcli draft create --to user@example.com --subject "Later" --body "WIP"`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			mailer, err := app.Mailer()
			if err != nil {
				return err
			}

			draft, err := mailer.CreateDraft(to, subject, body)
			if err != nil {
				return fmt.Errorf("failed to create draft: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, draft)
			}
			app.UI.Success(fmt.Sprintf("Draft %s validated", draft.ID))
			app.UI.Hint("Drafts are not uploaded; the id is only valid for this run")
			return nil
		}),
	}
	cmd.Flags().StringSliceVar(&to, "to", nil, "Recipient address (repeatable)")
	cmd.Flags().StringVar(&subject, "subject", "", "Email subject")
	cmd.Flags().StringVar(&body, "body", "", "Plain text body")
	return cmd
}

func newDraftScheduleCmd(app *App) *cobra.Command {
	var to []string
	var subject, body, at string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Validate a scheduled send",
		Example: `  mailcli draft schedule --to user@example.com --subject "Reminder" --body "Ping" --at tomorrow
  mailcli draft schedule --to user@example.com --subject "Hi" --body "x" --at 2026-09-15`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			if at == "" {
				return fmt.Errorf("--at is required")
			}
			sendAt, err := dateparse.Parse(at)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}

			mailer, err := app.Mailer()
			if err != nil {
				return err
			}

			sched, err := mailer.ScheduleEmail(to, subject, body, sendAt)
			if err != nil {
				return fmt.Errorf("failed to schedule email: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, sched)
			}
			app.UI.Success(fmt.Sprintf("Scheduled %s for %s", sched.ID, sched.SendAt.Format("2006-01-02 15:04")))
			app.UI.Hint("Schedules are not persisted; nothing will be sent automatically")
			return nil
		}),
	}
	cmd.Flags().StringSliceVar(&to, "to", nil, "Recipient address (repeatable)")
	cmd.Flags().StringVar(&subject, "subject", "", "Email subject")
	cmd.Flags().StringVar(&body, "body", "", "Plain text body")
	cmd.Flags().StringVar(&at, "at", "", "Send time (e.g. tomorrow, 2h, 2026-09-15)")
	return cmd
}
