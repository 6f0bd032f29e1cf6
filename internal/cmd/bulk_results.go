package cmd

import (
	"fmt"

	"github.com/salmonumbrella/mailcli/internal/mail"
)

// printBulkResults prints the outcome of a batch mail operation.
//
// action is a past-tense verb ("Deleted", "Sent"), target an optional
// qualifier ("messages", "recipients"). Failures are listed one per
// line with their reason.
//
// Example output:
//
//	Deleted 5 messages
//	Sent 3 recipients, 2 failed:
//	  bad-address: invalid email address
//	  503: email not found
func printBulkResults(action, target string, result *mail.BatchResult) {
	succeeded := len(result.Succeeded)
	failed := len(result.Failed)

	if failed == 0 {
		if target != "" {
			fmt.Printf("%s %d %s\n", action, succeeded, target)
			return
		}
		fmt.Printf("%s %d\n", action, succeeded)
		return
	}

	if target != "" {
		fmt.Printf("%s %d %s, %d failed:\n", action, succeeded, target, failed)
	} else {
		fmt.Printf("%s %d, %d failed:\n", action, succeeded, failed)
	}
	for _, f := range result.Failed {
		fmt.Printf("  %s: %s\n", f.ID, f.Reason)
	}
}
