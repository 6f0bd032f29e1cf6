// Package ui provides terminal UI utilities with color support.
// Colors are auto-detected, NO_COLOR is respected, and all messages go
// to stderr so stdout stays clean for data output.
package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

type UI struct {
	out   *termenv.Output
	color bool
}

type contextKey struct{}

// New creates a new UI with the specified color mode.
// colorMode can be "never", "always", or "auto".
// The NO_COLOR environment variable overrides color=true.
func New(colorMode string) *UI {
	out := termenv.NewOutput(os.Stderr)
	var color bool

	switch colorMode {
	case "never":
		color = false
	case "always":
		color = true
	default: // auto
		color = out.ColorProfile() != termenv.Ascii
	}

	if os.Getenv("NO_COLOR") != "" {
		color = false
	}

	return &UI{out: out, color: color}
}

func (u *UI) println(msg, ansiColor string) {
	if u.color {
		fmt.Fprintln(os.Stderr, u.out.String(msg).Foreground(u.out.Color(ansiColor)))
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Success prints a success message in green to stderr.
func (u *UI) Success(msg string) { u.println(msg, "2") }

// Error prints an error message in red to stderr.
func (u *UI) Error(msg string) { u.println(msg, "1") }

// Warning prints a warning message in yellow to stderr.
func (u *UI) Warning(msg string) { u.println(msg, "3") }

// Info prints an informational message to stderr.
func (u *UI) Info(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// Hint prints an indented suggestion line in faint text to stderr.
func (u *UI) Hint(msg string) {
	if u.color {
		fmt.Fprintln(os.Stderr, u.out.String("  "+msg).Faint())
		return
	}
	fmt.Fprintln(os.Stderr, "  "+msg)
}

// WithUI stores the UI in the context.
func WithUI(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext retrieves the UI from the context.
// If no UI is found in the context, returns New("auto").
func FromContext(ctx context.Context) *UI {
	if u, ok := ctx.Value(contextKey{}).(*UI); ok {
		return u
	}
	return New("auto")
}
