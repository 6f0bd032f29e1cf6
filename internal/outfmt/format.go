// Package outfmt handles text and JSON output modes for commands.
package outfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/salmonumbrella/mailcli/internal/filter"
)

type Mode int

const (
	Text Mode = iota
	JSON
)

// WriteJSON writes v as indented JSON to w.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSONFiltered writes v as indented JSON to w, applying a JQ filter
// expression. If query is empty, behaves like WriteJSON. The value is
// round-tripped through encoding/json so gojq sees plain maps and slices.
func WriteJSONFiltered(w io.Writer, v any, query string) error {
	if query == "" {
		return WriteJSON(w, v)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	result, err := filter.Apply(data, query)
	if err != nil {
		return err
	}

	return WriteJSON(w, result)
}

// PrintJSONFiltered prints v as JSON to stdout, applying a JQ filter
// expression. If query is empty, plain indented JSON is printed.
func PrintJSONFiltered(v any, query string) error {
	return WriteJSONFiltered(os.Stdout, v, query)
}

// Errorf prints to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
