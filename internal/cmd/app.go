package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/salmonumbrella/mailcli/internal/config"
	"github.com/salmonumbrella/mailcli/internal/contacts"
	cerrors "github.com/salmonumbrella/mailcli/internal/errors"
	"github.com/salmonumbrella/mailcli/internal/mail"
	"github.com/salmonumbrella/mailcli/internal/outfmt"
	"github.com/salmonumbrella/mailcli/internal/ui"
	"github.com/spf13/cobra"
)

type appKey struct{}

type App struct {
	Flags  *rootFlags
	UI     *ui.UI
	Logger Logger

	cfg    *config.Config
	mailer mail.Mailer

	// seams for tests
	loadConfig   func(path string) (*config.Config, error)
	newMailer    func(cfg *config.Config) mail.Mailer
	contactsPath string
}

// Logger is the minimal interface we need from slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
}

func NewApp() *App {
	flags := rootFlags{
		Color:  envOr("MAIL_COLOR", "auto"),
		Output: envOr("MAIL_OUTPUT", "text"),
	}
	return &App{
		Flags:      &flags,
		loadConfig: config.Load,
		newMailer: func(cfg *config.Config) mail.Mailer {
			return mail.NewService(mail.Config{
				SMTPHost:         cfg.SMTPHost,
				SMTPPort:         cfg.SMTPPort,
				IMAPHost:         cfg.IMAPHost,
				IMAPPort:         cfg.IMAPPort,
				Username:         cfg.Username,
				Password:         cfg.Password,
				SMTPSSL:          cfg.SMTPSSL,
				IMAPTLS:          cfg.IMAPTLS,
				MarkSeenOnRead:   cfg.MarkSeenOnRead,
				ConnectTimeout:   cfg.ConnectTimeout,
				OperationTimeout: cfg.OperationTimeout,
			})
		},
	}
}

func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func AppFromContext(ctx context.Context) *App {
	if app, ok := ctx.Value(appKey{}).(*App); ok {
		return app
	}
	return nil
}

// runE wraps a cobra RunE to inject the App and normalize errors.
func runE(app *App, fn func(cmd *cobra.Command, args []string, app *App) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if app == nil {
			app = AppFromContext(cmd.Context())
		}
		if app == nil {
			app = NewApp()
		}
		return mapCommandError(fn(cmd, args, app))
	}
}

// Config loads the account configuration once and caches it.
func (a *App) Config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	path := a.Flags.Config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := a.loadConfig(path)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

// Mailer returns the shared email service for the configured account.
func (a *App) Mailer() (mail.Mailer, error) {
	if a.mailer != nil {
		return a.mailer, nil
	}
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}
	a.mailer = a.newMailer(cfg)
	return a.mailer, nil
}

// CloseMailer logs out the IMAP session if one was opened.
func (a *App) CloseMailer() {
	if a.mailer != nil {
		if err := a.mailer.Close(); err != nil && a.Logger != nil {
			a.Logger.Debug("closing mail connection", "error", err)
		}
	}
}

// ContactsPath returns the contacts snapshot file location.
func (a *App) ContactsPath() string {
	if a.contactsPath != "" {
		return a.contactsPath
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, config.AppName, "contacts.json")
	}
	return "." + config.AppName + "-contacts.json"
}

// Contacts loads the contact store from its snapshot file.
func (a *App) Contacts() (*contacts.Store, error) {
	store, err := contacts.LoadFile(a.ContactsPath())
	if err != nil {
		return nil, fmt.Errorf("loading contacts: %w", err)
	}
	return store, nil
}

// SaveContacts writes the contact store back to its snapshot file.
func (a *App) SaveContacts(store *contacts.Store) error {
	if err := store.SaveFile(a.ContactsPath()); err != nil {
		return fmt.Errorf("saving contacts: %w", err)
	}
	return nil
}

func (a *App) IsJSON(ctx context.Context) bool {
	mode, ok := ctx.Value(outputModeKey).(outfmt.Mode)
	return ok && mode == outfmt.JSON
}

func (a *App) Query(ctx context.Context) string {
	query, _ := ctx.Value(queryKey).(string)
	return query
}

func (a *App) PrintJSON(cmd *cobra.Command, v any) error {
	return outfmt.PrintJSONFiltered(v, a.Query(cmd.Context()))
}

func (a *App) Confirm(cmd *cobra.Command, skip bool, prompt string) (bool, error) {
	if skip || a.IsJSON(cmd.Context()) || (a.Flags != nil && a.Flags.Yes) {
		return true, nil
	}
	return confirmPrompt(os.Stderr, prompt, "yes")
}

// Suggest wraps an error with a user-facing suggestion.
func Suggest(err error, suggestion string) error {
	return cerrors.WithSuggestion(err, suggestion)
}
