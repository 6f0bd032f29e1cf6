package cmd

import (
	"fmt"

	"github.com/salmonumbrella/mailcli/internal/dateparse"
	"github.com/salmonumbrella/mailcli/internal/mail"
	"github.com/spf13/cobra"
)

func newEmailSearchCmd(app *App) *cobra.Command {
	var from, toAddr, subject, text, since, before string
	var seen, unseen, flagged bool
	var page, limit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the inbox",
		Long:  "Search the inbox with server-side filters. Set filters combine with AND.",
		Example: `  mailcli email search --from billing@example.com
  mailcli email search --subject invoice --unseen
  mailcli email search --text overdue --since 7d --page 2 --limit 20`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			filter := mail.SearchFilter{
				From:    from,
				To:      toAddr,
				Subject: subject,
				Text:    text,
				Seen:    seen,
				Unseen:  unseen,
				Flagged: flagged,
			}
			if since != "" {
				t, err := dateparse.Parse(since)
				if err != nil {
					return fmt.Errorf("invalid --since: %w", err)
				}
				filter.Since = t
			}
			if before != "" {
				t, err := dateparse.Parse(before)
				if err != nil {
					return fmt.Errorf("invalid --before: %w", err)
				}
				filter.Before = t
			}

			mailer, err := app.Mailer()
			if err != nil {
				return err
			}

			result, err := mailer.Search(filter, page, limit)
			if err != nil {
				return fmt.Errorf("failed to search emails: %w", err)
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, result)
			}
			if result.Total == 0 {
				printNoResults("No matching emails")
				return nil
			}

			printMessageTable(result.Messages)
			pages := (result.Total + result.Limit - 1) / result.Limit
			fmt.Printf("\nPage %d of %d (%d matches)\n", result.Page, pages, result.Total)
			return nil
		}),
	}
	cmd.Flags().StringVar(&from, "from", "", "Match sender address")
	cmd.Flags().StringVar(&toAddr, "to", "", "Match recipient address")
	cmd.Flags().StringVar(&subject, "subject", "", "Match subject substring")
	cmd.Flags().StringVar(&text, "text", "", "Match message text")
	cmd.Flags().StringVar(&since, "since", "", "Only messages after this date (e.g. 2026-01-01, 7d, yesterday)")
	cmd.Flags().StringVar(&before, "before", "", "Only messages before this date")
	cmd.Flags().BoolVar(&seen, "seen", false, "Only read messages")
	cmd.Flags().BoolVar(&unseen, "unseen", false, "Only unread messages")
	cmd.Flags().BoolVar(&flagged, "flagged", false, "Only flagged messages")
	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().IntVar(&limit, "limit", 20, "Results per page (1-100)")
	return cmd
}
