package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEmailForwardCmd(app *App) *cobra.Command {
	var to []string
	var note string

	cmd := &cobra.Command{
		Use:   "forward <id>",
		Short: "Forward an email to new recipients",
		Args:  cobra.ExactArgs(1),
		Example: `  mailcli email forward 4821 --to colleague@example.com
  mailcli email forward 4821 --to a@example.com --note "FYI, see below"`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			if len(to) == 0 {
				return fmt.Errorf("--to is required")
			}

			mailer, err := app.Mailer()
			if err != nil {
				return err
			}
			if err := mailer.Forward(args[0], to, note); err != nil {
				return fmt.Errorf("failed to forward email: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{"forwarded": true, "id": args[0], "to": to})
			}
			app.UI.Success(fmt.Sprintf("Forwarded email %s to %s", args[0], strings.Join(to, ", ")))
			return nil
		}),
	}
	cmd.Flags().StringSliceVar(&to, "to", nil, "Recipient address (repeatable)")
	cmd.Flags().StringVar(&note, "note", "", "Note prepended to the forwarded body")
	return cmd
}

func newEmailReplyCmd(app *App) *cobra.Command {
	var body string
	var replyAll bool

	cmd := &cobra.Command{
		Use:   "reply <id>",
		Short: "Reply to an email",
		Args:  cobra.ExactArgs(1),
		Example: `  mailcli email reply 4821 --body "Sounds good"
  mailcli email reply 4821 --body "Thanks all" --all`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			mailer, err := app.Mailer()
			if err != nil {
				return err
			}
			if err := mailer.Reply(args[0], body, replyAll); err != nil {
				return fmt.Errorf("failed to reply: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{"replied": true, "id": args[0], "all": replyAll})
			}
			app.UI.Success(fmt.Sprintf("Replied to email %s", args[0]))
			return nil
		}),
	}
	cmd.Flags().StringVar(&body, "body", "", "Reply body")
	cmd.Flags().BoolVar(&replyAll, "all", false, "Reply to all original recipients")
	return cmd
}
