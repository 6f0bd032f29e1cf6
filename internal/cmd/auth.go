package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/salmonumbrella/mailcli/internal/config"
	"github.com/salmonumbrella/mailcli/internal/validation"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage stored credentials",
		Long: `Manage the account password in the system keyring.

The password is read from the keyring when MAIL_PASSWORD is not set in
the environment or the configuration file.`,
	}
	cmd.AddCommand(newAuthSetCmd(app))
	cmd.AddCommand(newAuthStatusCmd(app))
	cmd.AddCommand(newAuthClearCmd(app))
	return cmd
}

func newAuthSetCmd(app *App) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Store the account password in the keyring",
		Example: `  mailcli auth set --account you@example.com`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			account, err := resolveAccount(app, account)
			if err != nil {
				return err
			}

			password, err := readPassword(fmt.Sprintf("Password for %s: ", account))
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("password cannot be empty")
			}

			if err := config.SetPassword(account, password); err != nil {
				return fmt.Errorf("failed to store password: %w", err)
			}
			app.UI.Success(fmt.Sprintf("Stored password for %s", account))
			return nil
		}),
	}
	cmd.Flags().StringVar(&account, "account", "", "Account email (defaults to the configured username)")
	return cmd
}

func newAuthStatusCmd(app *App) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a password is stored",
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			account, err := resolveAccount(app, account)
			if err != nil {
				return err
			}

			stored := config.HasPassword(account)
			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{"account": account, "stored": stored})
			}
			if stored {
				app.UI.Success(fmt.Sprintf("Password stored for %s", account))
			} else {
				app.UI.Warning(fmt.Sprintf("No password stored for %s", account))
				app.UI.Hint("Run 'mailcli auth set' to store one")
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&account, "account", "", "Account email (defaults to the configured username)")
	return cmd
}

func newAuthClearCmd(app *App) *cobra.Command {
	var account string
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored password",
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			account, err := resolveAccount(app, account)
			if err != nil {
				return err
			}

			ok, err := app.Confirm(cmd, force, fmt.Sprintf("Remove stored password for %s? Type 'yes' to confirm: ", account))
			if err != nil {
				return err
			}
			if !ok {
				app.UI.Info("Cancelled")
				return nil
			}

			if err := config.DeletePassword(account); err != nil {
				return fmt.Errorf("failed to remove password: %w", err)
			}
			app.UI.Success(fmt.Sprintf("Removed password for %s", account))
			return nil
		}),
	}
	cmd.Flags().StringVar(&account, "account", "", "Account email (defaults to the configured username)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}

// resolveAccount picks the explicit --account value or falls back to
// the configured username. Auth commands must work before the full
// configuration validates, so only the username is consulted.
func resolveAccount(app *App, flag string) (string, error) {
	if flag != "" {
		if err := validation.Email(flag); err != nil {
			return "", fmt.Errorf("invalid account: %w", err)
		}
		return flag, nil
	}
	if v := os.Getenv("MAIL_USER"); v != "" {
		return v, nil
	}
	if cfg, err := app.Config(); err == nil && cfg.Username != "" {
		return cfg.Username, nil
	}
	return "", Suggest(fmt.Errorf("no account specified"), "Pass --account or set MAIL_USER")
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	// piped input
	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
