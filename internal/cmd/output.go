package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/salmonumbrella/mailcli/internal/outfmt"
)

func newTabWriter() *tabwriter.Writer {
	return outfmt.NewTabWriter()
}

func printNoResults(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}
