package cmd

import (
	"fmt"
	"strings"

	"github.com/salmonumbrella/mailcli/internal/format"
	"github.com/spf13/cobra"
)

func newEmailGetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single email including its body",
		Args:  cobra.ExactArgs(1),
		Example: `  mailcli email get 4821
  mailcli email get 4821 --output=json --query '.body'`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			mailer, err := app.Mailer()
			if err != nil {
				return err
			}

			msg, err := mailer.GetByID(args[0])
			if err != nil {
				return fmt.Errorf("failed to get email: %w", err)
			}
			if msg == nil {
				return fmt.Errorf("email %s not found", args[0])
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, msg)
			}

			fmt.Printf("ID:      %s\n", msg.ID)
			fmt.Printf("From:    %s\n", msg.From)
			if len(msg.To) > 0 {
				fmt.Printf("To:      %s\n", format.AddressList(msg.To))
			}
			if len(msg.Cc) > 0 {
				fmt.Printf("Cc:      %s\n", format.AddressList(msg.Cc))
			}
			fmt.Printf("Date:    %s\n", format.Date(msg.Date))
			fmt.Printf("Subject: %s\n", msg.Subject)
			if len(msg.Flags) > 0 {
				fmt.Printf("Flags:   %s\n", format.Flags(msg.Flags))
			}
			if msg.Size > 0 {
				fmt.Printf("Size:    %s\n", format.FormatBytes(int64(msg.Size)))
			}
			fmt.Printf("\n%s\n", strings.TrimRight(msg.Body, "\n"))
			return nil
		}),
	}
	return cmd
}
