package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	cerrors "github.com/salmonumbrella/mailcli/internal/errors"
	"github.com/salmonumbrella/mailcli/internal/logging"
	"github.com/salmonumbrella/mailcli/internal/outfmt"
	"github.com/salmonumbrella/mailcli/internal/ui"
	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootFlags struct {
	Color  string
	Output string
	Config string
	Debug  bool
	Query  string
	Yes    bool
}

type contextKey string

const (
	outputModeKey contextKey = "outputMode"
	queryKey      contextKey = "query"
)

func Execute(args []string) error {
	app := NewApp()
	root := NewRootCmd(app)
	root.SetArgs(args)

	err := root.Execute()
	app.CloseMailer()
	if err != nil {
		if app.Flags.Output == "json" {
			payload := map[string]any{
				"error": map[string]any{
					"message": err.Error(),
				},
			}
			if cerrors.ContainsSuggestion(err) {
				payload["error"].(map[string]any)["suggestion"] = cerrors.GetSuggestion(err)
			}
			_ = outfmt.WriteJSON(os.Stderr, payload)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)

			if cerrors.ContainsSuggestion(err) {
				fmt.Fprintln(os.Stderr, "")
				fmt.Fprintln(os.Stderr, "Suggestion:", cerrors.GetSuggestion(err))
			}
		}
	}
	return err
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mailcli",
		Short:         "Email and contacts from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # One-time setup
  mailcli auth set

  # Email
  mailcli email read --count 10
  mailcli email search --from billing@example.com --limit 20
  mailcli email get <id>
  mailcli email send --to someone@example.com --subject "Hi" --body "Hello"

  # Contacts
  mailcli contacts add "Jane Doe" jane@example.com --group work
  mailcli contacts search jane

  # JSON output for scripting
  mailcli --output=json email read | jq .
`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// UI (must come first)
			u := ui.New(app.Flags.Color)
			ctx := ui.WithUI(cmd.Context(), u)
			app.UI = u

			// Output format
			mode := outfmt.Text
			if app.Flags.Output == "json" {
				mode = outfmt.JSON
			}
			ctx = context.WithValue(ctx, outputModeKey, mode)

			// Query filter
			ctx = context.WithValue(ctx, queryKey, app.Flags.Query)

			// Logging
			logger := logging.Setup(app.Flags.Debug)
			ctx = logging.WithLogger(ctx, logger)
			app.Logger = logger

			ctx = WithApp(ctx, app)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&app.Flags.Color, "color", app.Flags.Color, "Color output: auto|always|never")
	root.PersistentFlags().StringVar(&app.Flags.Output, "output", app.Flags.Output, "Output format: text|json")
	root.PersistentFlags().StringVar(&app.Flags.Config, "config", envOr("MAIL_CONFIG", ""), "Path to configuration file")
	root.PersistentFlags().BoolVar(&app.Flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&app.Flags.Query, "query", "", "JQ filter expression for JSON output")
	root.PersistentFlags().BoolVarP(&app.Flags.Yes, "yes", "y", false, "Skip confirmation prompts (non-interactive)")

	root.AddCommand(newAuthCmd(app))
	root.AddCommand(newEmailCmd(app))
	root.AddCommand(newContactsCmd(app))
	root.AddCommand(newDraftCmd(app))
	root.AddCommand(newUpdateCmd(app))

	// Desire paths: top-level shortcuts for common email workflows.
	root.AddCommand(newReadShortcutCmd(app))
	root.AddCommand(newSearchShortcutCmd(app))
	root.AddCommand(newSendShortcutCmd(app))
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
