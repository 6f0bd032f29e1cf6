package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/salmonumbrella/mailcli/internal/mail"
	"github.com/spf13/cobra"
)

func newEmailSendCmd(app *App) *cobra.Command {
	var to []string
	var subject, body, htmlBody string
	var attachments []string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send an email",
		Long: `Send an email with optional attachments.

Examples:
  mailcli email send --to user@example.com --subject "Hello" --body "Hi there"
  mailcli email send --to user@example.com --subject "Report" --body "See attached" --attach report.pdf
  mailcli email send --to a@example.com --to b@example.com --subject "Hi" --html "<p>Hello</p>"`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			if len(to) == 0 {
				return fmt.Errorf("--to is required")
			}

			mailer, err := app.Mailer()
			if err != nil {
				return err
			}

			if len(attachments) > 0 {
				err = mailer.SendWithAttachments(to, subject, body, htmlBody, attachments)
			} else {
				err = mailer.Send(to, subject, body, htmlBody)
			}
			if err != nil {
				return fmt.Errorf("failed to send email: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"sent":        true,
					"to":          to,
					"subject":     subject,
					"attachments": len(attachments),
				})
			}
			app.UI.Success(fmt.Sprintf("Sent to %s", strings.Join(to, ", ")))
			return nil
		}),
	}
	cmd.Flags().StringSliceVar(&to, "to", nil, "Recipient address (repeatable)")
	cmd.Flags().StringVar(&subject, "subject", "", "Email subject")
	cmd.Flags().StringVar(&body, "body", "", "Plain text body")
	cmd.Flags().StringVar(&htmlBody, "html", "", "HTML body")
	cmd.Flags().StringSliceVar(&attachments, "attach", nil, "File to attach (repeatable)")
	return cmd
}

func newEmailBulkSendCmd(app *App) *cobra.Command {
	var to []string
	var subject, body, htmlBody, file string

	cmd := &cobra.Command{
		Use:   "bulk-send",
		Short: "Send several emails, one per recipient or item",
		Long: `Send the same message to each --to recipient individually, or send a
list of independent messages from a JSON file. The file holds an array
of {"to": [...], "subject": "...", "body": "...", "html": "..."} items.`,
		Example: `  mailcli email bulk-send --to a@example.com --to b@example.com --subject "Update" --body "News"
  mailcli email bulk-send --file messages.json`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			mailer, err := app.Mailer()
			if err != nil {
				return err
			}

			var result *mail.BatchResult
			if file != "" {
				items, err := readBulkItems(file)
				if err != nil {
					return err
				}
				result, err = mailer.SendEach(items)
				if err != nil {
					return fmt.Errorf("failed to send batch: %w", err)
				}
			} else {
				result, err = mailer.SendBatch(to, subject, body, htmlBody)
				if err != nil {
					return fmt.Errorf("failed to send batch: %w", err)
				}
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, result)
			}
			printBulkResults("Sent", "recipients", result)
			return nil
		}),
	}
	cmd.Flags().StringSliceVar(&to, "to", nil, "Recipient address (repeatable)")
	cmd.Flags().StringVar(&subject, "subject", "", "Email subject")
	cmd.Flags().StringVar(&body, "body", "", "Plain text body")
	cmd.Flags().StringVar(&htmlBody, "html", "", "HTML body")
	cmd.Flags().StringVar(&file, "file", "", "JSON file with an array of messages to send")
	return cmd
}

func readBulkItems(path string) ([]mail.BulkItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var items []mail.BulkItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s holds no messages", path)
	}
	return items, nil
}
