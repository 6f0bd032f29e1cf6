package cmd

import "github.com/spf13/cobra"

// Top-level shortcuts for the most common email workflows. Each is a
// fresh instance of the corresponding email subcommand.

func newReadShortcutCmd(app *App) *cobra.Command {
	return newEmailReadCmd(app)
}

func newSearchShortcutCmd(app *App) *cobra.Command {
	return newEmailSearchCmd(app)
}

func newSendShortcutCmd(app *App) *cobra.Command {
	return newEmailSendCmd(app)
}
