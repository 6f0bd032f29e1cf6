package cmd

import (
	"fmt"
	"strings"

	"github.com/salmonumbrella/mailcli/internal/contacts"
	"github.com/salmonumbrella/mailcli/internal/outfmt"
	"github.com/spf13/cobra"
)

func newContactsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Contacts management operations",
		Long:  "Manage the local address book. Contacts are stored in a JSON file under the user config directory.",
	}

	cmd.AddCommand(newContactsAddCmd(app))
	cmd.AddCommand(newContactsListCmd(app))
	cmd.AddCommand(newContactsGetCmd(app))
	cmd.AddCommand(newContactsGroupCmd(app))
	cmd.AddCommand(newContactsSearchCmd(app))
	cmd.AddCommand(newContactsUpdateCmd(app))
	cmd.AddCommand(newContactsDeleteCmd(app))

	return cmd
}

// displayGroup renders an absent group as "general" without storing it.
func displayGroup(c contacts.Contact) string {
	if c.Group == "" {
		return "general"
	}
	return c.Group
}

func printContactTable(list []contacts.Contact) {
	tw := newTabWriter()
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tGROUP")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			c.ID,
			outfmt.SanitizeTab(c.Name),
			outfmt.SanitizeTab(c.Email),
			outfmt.SanitizeTab(displayGroup(c)),
		)
	}
	tw.Flush()
}

func newContactsAddCmd(app *App) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "add <name> <email>",
		Short: "Add a contact",
		Args:  cobra.ExactArgs(2),
		Example: `  mailcli contacts add "Jane Doe" jane@example.com
  mailcli contacts add "Jane Doe" jane@example.com --group work`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			store, err := app.Contacts()
			if err != nil {
				return err
			}

			contact, err := store.Add(args[0], args[1], group)
			if err != nil {
				return fmt.Errorf("failed to add contact: %w", err)
			}
			if err := app.SaveContacts(store); err != nil {
				return err
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, contact)
			}
			app.UI.Success(fmt.Sprintf("Added %s <%s> (%s)", contact.Name, contact.Email, contact.ID))
			return nil
		}),
	}
	cmd.Flags().StringVar(&group, "group", "", "Contact group")
	return cmd
}

func newContactsListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Example: `  mailcli contacts list
  mailcli contacts list --limit 50`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			store, err := app.Contacts()
			if err != nil {
				return err
			}

			list := store.List(limit)
			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, list)
			}
			if len(list) == 0 {
				printNoResults("No contacts found")
				return nil
			}
			printContactTable(list)
			return nil
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of contacts to show (0 = all)")
	return cmd
}

func newContactsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a contact",
		Args:  cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			store, err := app.Contacts()
			if err != nil {
				return err
			}

			contact := store.Get(args[0])
			if contact == nil {
				return fmt.Errorf("contact %s not found", args[0])
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, contact)
			}
			fmt.Printf("ID:    %s\n", contact.ID)
			fmt.Printf("Name:  %s\n", contact.Name)
			fmt.Printf("Email: %s\n", contact.Email)
			fmt.Printf("Group: %s\n", displayGroup(*contact))
			return nil
		}),
	}
}

func newContactsGroupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "group <name>",
		Short: "List contacts in a group",
		Args:  cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			store, err := app.Contacts()
			if err != nil {
				return err
			}

			list := store.ByGroup(args[0])
			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, list)
			}
			if len(list) == 0 {
				printNoResults(fmt.Sprintf("No contacts in group %q", args[0]))
				return nil
			}
			printContactTable(list)
			return nil
		}),
	}
}

func newContactsSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search contacts by name or email",
		Args:  cobra.ExactArgs(1),
		Example: `  mailcli contacts search jane
  mailcli contacts search example.com`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			store, err := app.Contacts()
			if err != nil {
				return err
			}

			list := store.Search(args[0])
			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, list)
			}
			if len(list) == 0 {
				printNoResults("No matching contacts")
				return nil
			}
			printContactTable(list)
			return nil
		}),
	}
}

func newContactsUpdateCmd(app *App) *cobra.Command {
	var name, email, group string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update contact fields",
		Long:  "Update one or more fields of a contact. All updates are validated before anything changes.",
		Args:  cobra.ExactArgs(1),
		Example: `  mailcli contacts update a1b2 --email new@example.com
  mailcli contacts update a1b2 --name "Jane Smith" --group friends`,
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			updates := map[string]string{}
			if cmd.Flags().Changed("name") {
				updates["name"] = name
			}
			if cmd.Flags().Changed("email") {
				updates["email"] = email
			}
			if cmd.Flags().Changed("group") {
				updates["group"] = group
			}
			if len(updates) == 0 {
				return fmt.Errorf("nothing to update: set --name, --email or --group")
			}

			store, err := app.Contacts()
			if err != nil {
				return err
			}

			contact, err := store.UpdateFields(args[0], updates)
			if err != nil {
				return fmt.Errorf("failed to update contact: %w", err)
			}
			if contact == nil {
				return fmt.Errorf("contact %s not found", args[0])
			}
			if err := app.SaveContacts(store); err != nil {
				return err
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, contact)
			}

			fields := make([]string, 0, len(updates))
			for f := range updates {
				fields = append(fields, f)
			}
			app.UI.Success(fmt.Sprintf("Updated %s (%s)", contact.Name, strings.Join(fields, ", ")))
			return nil
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&email, "email", "", "New email address")
	cmd.Flags().StringVar(&group, "group", "", "New group")
	return cmd
}

func newContactsDeleteCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			id := args[0]
			ok, err := app.Confirm(cmd, force, fmt.Sprintf("Delete contact %s? Type 'yes' to confirm: ", id))
			if err != nil {
				return err
			}
			if !ok {
				app.UI.Info("Cancelled")
				return nil
			}

			store, err := app.Contacts()
			if err != nil {
				return err
			}
			if !store.Delete(id) {
				return fmt.Errorf("contact %s not found", id)
			}
			if err := app.SaveContacts(store); err != nil {
				return err
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{"deleted": true, "id": id})
			}
			app.UI.Success(fmt.Sprintf("Deleted contact %s", id))
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}
