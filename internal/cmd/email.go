package cmd

import (
	"fmt"

	"github.com/salmonumbrella/mailcli/internal/format"
	"github.com/salmonumbrella/mailcli/internal/mail"
	"github.com/salmonumbrella/mailcli/internal/outfmt"
	"github.com/spf13/cobra"
)

func newEmailCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Email operations",
	}

	cmd.AddCommand(newEmailReadCmd(app))
	cmd.AddCommand(newEmailGetCmd(app))
	cmd.AddCommand(newEmailSendCmd(app))
	cmd.AddCommand(newEmailSearchCmd(app))
	cmd.AddCommand(newEmailDeleteCmd(app))
	cmd.AddCommand(newEmailBulkDeleteCmd(app))
	cmd.AddCommand(newEmailMarkReadCmd(app))
	cmd.AddCommand(newEmailMarkUnreadCmd(app))
	cmd.AddCommand(newEmailForwardCmd(app))
	cmd.AddCommand(newEmailReplyCmd(app))
	cmd.AddCommand(newEmailBulkSendCmd(app))
	cmd.AddCommand(newEmailStatsCmd(app))

	return cmd
}

func newEmailReadCmd(app *App) *cobra.Command {
	var count int
	var withBody bool

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read recent emails",
		Long:  "Read the newest messages from the inbox, newest first.",
		Example: `  mailcli email read
  mailcli email read --count 25
  mailcli email read --count 5 --body`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			mailer, err := app.Mailer()
			if err != nil {
				return err
			}

			messages, err := mailer.ReadRecent(count, withBody)
			if err != nil {
				return fmt.Errorf("failed to read emails: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, messages)
			}
			if len(messages) == 0 {
				printNoResults("No emails found")
				return nil
			}

			printMessageTable(messages)
			if withBody {
				for _, m := range messages {
					fmt.Printf("\n--- %s ---\n%s\n", m.Subject, m.Body)
				}
			}
			return nil
		}),
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of messages to read (1-1000)")
	cmd.Flags().BoolVar(&withBody, "body", false, "Fetch and print message bodies")
	return cmd
}

func printMessageTable(messages []mail.Message) {
	tw := newTabWriter()
	fmt.Fprintln(tw, "ID\tFROM\tSUBJECT\tDATE\tFLAGS")
	for _, m := range messages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			m.ID,
			outfmt.SanitizeTab(format.Truncate(m.From, 30)),
			outfmt.SanitizeTab(format.Truncate(m.Subject, 50)),
			format.Date(m.Date),
			format.Flags(m.Flags),
		)
	}
	tw.Flush()
}
