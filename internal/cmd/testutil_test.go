package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/salmonumbrella/mailcli/internal/config"
	"github.com/salmonumbrella/mailcli/internal/mail"
	"github.com/salmonumbrella/mailcli/internal/ui"
)

// captureStdout captures stdout output for assertions in tests.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	stdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = stdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()

	return buf.String()
}

// newTestApp returns an App wired to a mock mailer and a throwaway
// contacts file.
func newTestApp(t *testing.T, mock *mail.MockMailer) *App {
	t.Helper()

	app := NewApp()
	app.UI = ui.New("never")
	app.loadConfig = func(string) (*config.Config, error) {
		return &config.Config{Username: "me@example.com"}, nil
	}
	app.newMailer = func(*config.Config) mail.Mailer { return mock }
	app.contactsPath = filepath.Join(t.TempDir(), "contacts.json")
	return app
}

// runCommand executes the root command with the given args against a
// fresh app and returns captured stdout.
func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd(app)
	root.SetArgs(args)

	var runErr error
	out := captureStdout(t, func() {
		runErr = root.Execute()
	})
	return out, runErr
}
